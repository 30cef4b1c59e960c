// Package perr defines the error kinds a PLT decode can run into.
//
// They are plain struct types so callers can pick them out with errors.As and
// read the diagnostic fields.
package perr

import (
	"fmt"
)

type (
	// ErrTruncatedInput is returned when a decoder gets fewer bytes than its
	// fixed width.
	ErrTruncatedInput struct {
		Caller string
		Want   int
		Got    int
	}
	// ErrUnterminatedSequence is returned when a packed-character string runs
	// out of bytes before its terminator. Partial holds what was decoded so far.
	ErrUnterminatedSequence struct {
		Caller  string
		Partial string
		Offset  int
	}
	ErrUnknownFileType struct {
		Index int16
	}
)

func (r ErrTruncatedInput) Error() string {
	return fmt.Sprintf("%s: truncated input: want %d bytes, got %d", r.Caller, r.Want, r.Got)
}

func (r ErrUnterminatedSequence) Error() string {
	return fmt.Sprintf(`%s: unterminated sequence after "%s"`, r.Caller, r.Partial)
}

func (r ErrUnknownFileType) Error() string {
	return fmt.Sprintf("unknown file type index %d", r.Index)
}
