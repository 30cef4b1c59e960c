package ds

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DumpJSON renders t as compact JSON for log lines and error messages. HTML
// escaping is off so decoded titles read the way they are stored.
func DumpJSON[T any](t T) string {
	buf := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(t); err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
