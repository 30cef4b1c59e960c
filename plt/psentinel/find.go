// Package psentinel locates the float32 markers that delimit the PLT header:
// 357.0 closes the header and every 299.0 before it starts a zone record.
package psentinel

import (
	"github.com/samber/lo"

	"plt-reader/ds"
	"plt-reader/plt/lbytes"
	"plt-reader/plt/pformat"
)

// windows lists the start offsets of the non-overlapping 4-byte windows that
// lie entirely within bs[:limit].
func windows(bs []byte, limit int) []int {
	if limit > len(bs) {
		limit = len(bs)
	}
	return ds.MakeRange(0, limit-pformat.SizeSentinel+1, pformat.SizeSentinel)
}

// FindEndOfHeader returns the offset right after the first 357.0 marker, or
// len(bs) when there is none.
func FindEndOfHeader(bs []byte) int {
	offset, found := lo.Find(
		windows(bs, len(bs)),
		func(offset int) bool {
			return pformat.IsMarker(lbytes.Float32(bs[offset:]), pformat.MarkerEndOfHeader)
		},
	)
	if !found {
		return len(bs)
	}
	return offset + pformat.SizeSentinel
}

// FindZoneMarkers returns the start offset of every 299.0 marker in the
// windows that end no later than endOfHeader.
func FindZoneMarkers(bs []byte, endOfHeader int) []int {
	return lo.Filter(
		windows(bs, endOfHeader),
		func(offset int, _ int) bool {
			return pformat.IsMarker(lbytes.Float32(bs[offset:]), pformat.MarkerZone)
		},
	)
}
