// Package pheader assembles the PLT header from its fixed-offset fields and the
// variable-length strings after them.
package pheader

import (
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"plt-reader/plt/lbytes"
	"plt-reader/plt/perr"
	"plt-reader/plt/pformat"
	"plt-reader/plt/psentinel"
	"plt-reader/plt/psig"
	"plt-reader/plt/ptitle"
	"plt-reader/plt/pvars"
)

// Decode fails only when the signature cannot be read. Everything after it is
// best effort: fields that cannot be decoded stay empty and the reason is
// appended to Header.Issues.
func Decode(bs []byte) (*Header, error) {
	signature, err := psig.Decode(bs)
	if err != nil {
		return nil, errors.Wrap(err, "pheader.Decode error")
	}

	header := Header{
		Signature: *signature,
		FileType:  pformat.FileTypeUnknown,
		VarNames:  make([]string, 0),
		Issues:    make([]error, 0),
	}
	addIssue := func(err error, msg string) {
		header.Issues = append(header.Issues, errors.Wrap(err, msg))
	}

	if byteOrder, ok := readInt16(bs, pformat.OffsetByteOrder); ok {
		header.ByteOrder = byteOrder
	} else {
		addIssue(truncatedAt(bs, pformat.OffsetByteOrder, lbytes.SizeInt16), "pheader.Decode error reading byte order")
	}

	if index, ok := readInt16(bs, pformat.OffsetFileType); ok {
		fileType, known := pformat.LookupFileType(index)
		header.FileType = fileType
		if !known {
			addIssue(perr.ErrUnknownFileType{Index: index}, "pheader.Decode error mapping file type")
		}
	} else {
		addIssue(truncatedAt(bs, pformat.OffsetFileType, lbytes.SizeInt16), "pheader.Decode error reading file type")
	}

	titleEnd := pformat.OffsetTitle
	title, err := ptitle.Decode(tail(bs, pformat.OffsetTitle))
	if err != nil {
		addIssue(err, "pheader.Decode error reading title")
		unterminated := perr.ErrUnterminatedSequence{}
		if errors.As(err, &unterminated) {
			titleEnd += unterminated.Offset
		}
	} else {
		header.Title = title.Text
		titleEnd += title.Offset
	}

	varsStart := titleEnd + lbytes.SizeInt32
	if varsStart <= len(bs) {
		header.NumVars = lbytes.Int32(bs[titleEnd:])
	} else {
		addIssue(truncatedAt(bs, titleEnd, lbytes.SizeInt32), "pheader.Decode error reading variable count")
	}

	vars, err := pvars.DecodeBlock(tail(bs, varsStart), header.NumVars)
	if err != nil {
		addIssue(err, "pheader.Decode error reading variable names")
	}
	header.VarNames = vars.Names

	varsEnd := varsStart + vars.Offset
	if varsEnd > len(bs) {
		varsEnd = len(bs)
	}
	rest := bs[varsEnd:]
	endOfHeader := psentinel.FindEndOfHeader(rest)
	header.EndOfHeader = varsEnd + endOfHeader
	header.ZoneMarkers = lo.Map(
		psentinel.FindZoneMarkers(rest, endOfHeader),
		func(offset int, _ int) int {
			return varsEnd + offset
		},
	)
	header.Digest = xxhash.Sum64(bs[:header.EndOfHeader])

	return &header, nil
}

func readInt16(bs []byte, offset int) (int16, bool) {
	if offset+lbytes.SizeInt16 > len(bs) {
		return 0, false
	}
	return lbytes.Int16(bs[offset:]), true
}

func truncatedAt(bs []byte, offset int, want int) error {
	got := len(bs) - offset
	if got < 0 {
		got = 0
	}
	return perr.ErrTruncatedInput{
		Caller: "pheader.Decode",
		Want:   want,
		Got:    got,
	}
}

// tail returns bs[offset:], or an empty slice when offset is past the end.
func tail(bs []byte, offset int) []byte {
	if offset >= len(bs) {
		return []byte{}
	}
	return bs[offset:]
}
