package pheader

import (
	"plt-reader/plt/pformat"
	"plt-reader/plt/psig"
)

type (
	Header struct {
		Signature psig.Signature   `json:"signature"`
		ByteOrder int16            `json:"byte_order"`
		FileType  pformat.FileType `json:"file_type"`
		Title     string           `json:"title"`
		NumVars   int32            `json:"num_vars"`
		VarNames  []string         `json:"var_names"`
		// EndOfHeader and ZoneMarkers are absolute offsets into the decoded buffer.
		EndOfHeader int   `json:"end_of_header"`
		ZoneMarkers []int `json:"zone_markers"`
		// Digest is the xxhash64 of the header bytes, EndOfHeader included.
		Digest uint64 `json:"digest"`
		// Issues collects the problems that did not stop the decode, such as an
		// unterminated title or an unknown file type.
		Issues []error `json:"-"`
	}
)
