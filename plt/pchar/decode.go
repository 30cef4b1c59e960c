// Package pchar decodes the 4-byte "packed character" unit PLT strings are
// made of. A group is either a zero terminator or a single character stored in
// its first byte.
package pchar

import (
	"plt-reader/plt/lbytes"
	"plt-reader/plt/perr"
	"plt-reader/plt/pformat"
)

type (
	PackedChar struct {
		Terminator bool `json:"terminator"`
		// Char is zero when Terminator is set.
		Char byte `json:"char"`
	}
)

func Decode(bs []byte) (PackedChar, error) {
	if len(bs) != pformat.SizePackedChar {
		err := perr.ErrTruncatedInput{
			Caller: "pchar.Decode",
			Want:   pformat.SizePackedChar,
			Got:    len(bs),
		}
		return PackedChar{}, err
	}
	if lbytes.Uint32(bs) == 0 {
		return PackedChar{Terminator: true}, nil
	}
	return PackedChar{Char: bs[0]}, nil
}

// DecodeAt decodes the group starting at offset, reporting a truncated input
// when the group does not fit in bs.
func DecodeAt(bs []byte, offset int) (PackedChar, error) {
	end := offset + pformat.SizePackedChar
	if offset < 0 || end > len(bs) {
		got := len(bs) - offset
		if got < 0 {
			got = 0
		}
		err := perr.ErrTruncatedInput{
			Caller: "pchar.DecodeAt",
			Want:   pformat.SizePackedChar,
			Got:    got,
		}
		return PackedChar{}, err
	}
	return Decode(bs[offset:end])
}

// String returns the character as text, or "" for a terminator.
func (c PackedChar) String() string {
	if c.Terminator {
		return ""
	}
	return pformat.DecodeChars([]byte{c.Char})
}
