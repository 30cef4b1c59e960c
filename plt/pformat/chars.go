package pformat

import (
	"golang.org/x/text/encoding/charmap"
)

// DecodeChars turns raw character bytes into a string, one character per byte.
// Bytes are read as ISO 8859-1, so 0x00-0x7F stay ASCII and every higher byte
// keeps its code point instead of becoming invalid UTF-8.
func DecodeChars(bs []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(bs)
	if err != nil {
		// ISO 8859-1 maps all 256 byte values, so this cannot happen.
		runes := make([]rune, 0, len(bs))
		for _, b := range bs {
			runes = append(runes, rune(b))
		}
		return string(runes)
	}
	return string(decoded)
}
