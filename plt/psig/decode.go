// Package psig decodes the 8-byte magic signature at the start of a PLT file.
package psig

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"plt-reader/ds"
	"plt-reader/plt/lbytes"
	"plt-reader/plt/pchar"
	"plt-reader/plt/perr"
	"plt-reader/plt/pformat"
)

func Decode(bs []byte) (*Signature, error) {
	if len(bs) < pformat.SizeSignature {
		err := perr.ErrTruncatedInput{
			Caller: "psig.Decode",
			Want:   pformat.SizeSignature,
			Got:    len(bs),
		}
		return nil, err
	}
	bs = bs[:pformat.SizeSignature]

	packedChars := make([]byte, 0, 2)
	for _, group := range ds.MakeChunks(bs, pformat.SizePackedChar) {
		packedChar, err := pchar.Decode(group)
		if err != nil {
			return nil, errors.Wrap(err, "psig.Decode error")
		}
		if !packedChar.Terminator {
			packedChars = append(packedChars, packedChar.Char)
		}
	}

	rawValue := lo.Reduce(
		bs,
		func(result uint64, b byte, _ int) uint64 {
			return result<<8 | uint64(b)
		},
		uint64(0),
	)

	return &Signature{
		RawValue:       rawValue,
		SignedHighWord: lbytes.Int32(bs),
		RawChars:       pformat.DecodeChars(bs),
		PackedChars:    pformat.DecodeChars(packedChars),
	}, nil
}

// IsValidMagicNumber reports whether bs starts with a PLT signature.
func IsValidMagicNumber(bs []byte) bool {
	if len(bs) < pformat.SizeSignature {
		return false
	}
	return strings.HasPrefix(string(bs[:pformat.SizeSignature]), pformat.MagicPrefix)
}

// Version returns the version part of the signature ("112" for "#!TDV112"),
// or "" when the signature does not carry the known prefix.
func (s Signature) Version() string {
	if !strings.HasPrefix(s.RawChars, pformat.MagicPrefix) {
		return ""
	}
	return strings.TrimRight(s.RawChars[len(pformat.MagicPrefix):], "\u0000 ")
}
