// Package ptitle scans a packed-character string such as the PLT title.
//
// Characters are read two slots (8 bytes) at a time. The string ends at the
// first zero group; if that is the first slot of a stride, the second slot is
// never looked at.
package ptitle

import (
	"github.com/pkg/errors"

	"plt-reader/ds"
	"plt-reader/plt/pchar"
	"plt-reader/plt/perr"
	"plt-reader/plt/pformat"
)

type (
	Title struct {
		Text string `json:"text"`
		// Offset is the first byte after the terminating group, relative to
		// the slice given to Decode.
		Offset int `json:"offset"`
	}
)

func Decode(bs []byte) (*Title, error) {
	chars := make([]byte, 0, 32)
	offset := 0
	for stride := 0; ; stride++ {
		first := stride * pformat.SizeStride
		second := first + pformat.SizePackedChar
		if second+pformat.SizePackedChar > len(bs) {
			err := perr.ErrUnterminatedSequence{
				Caller:  "ptitle.Decode",
				Partial: pformat.DecodeChars(chars),
				Offset:  offset,
			}
			return nil, err
		}

		firstChar, err := pchar.DecodeAt(bs, first)
		if err != nil {
			err := ds.ErrUnreachableCode{Caller: "ptitle.Decode", Detail: err.Error()}
			return nil, errors.WithStack(err)
		}
		secondChar, err := pchar.DecodeAt(bs, second)
		if err != nil {
			err := ds.ErrUnreachableCode{Caller: "ptitle.Decode", Detail: err.Error()}
			return nil, errors.WithStack(err)
		}

		if firstChar.Terminator {
			offset = first + pformat.SizePackedChar
			break
		}
		chars = append(chars, firstChar.Char)
		if secondChar.Terminator {
			offset = second + pformat.SizePackedChar
			break
		}
		chars = append(chars, secondChar.Char)
	}

	return &Title{
		Text:   pformat.DecodeChars(chars),
		Offset: offset,
	}, nil
}
