package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a branch that earlier checks should have ruled out.
	ErrUnreachableCode struct {
		Caller string
		Detail string
	}
)

func (r ErrUnreachableCode) Error() string {
	if r.Detail == "" {
		return fmt.Sprintf("%s: unreachable code", r.Caller)
	}
	return fmt.Sprintf("%s: unreachable code: %s", r.Caller, r.Detail)
}
