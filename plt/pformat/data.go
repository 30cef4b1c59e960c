// Package pformat holds the fixed layout of a PLT header: byte offsets, widths,
// sentinel values and the file-type table.
package pformat

type (
	FileType string
)

const (
	OffsetSignature = 0
	OffsetByteOrder = 8
	OffsetFileType  = 12
	OffsetTitle     = 16

	SizeSignature = 8
	// SizePackedChar is the width of one character slot in a PLT string.
	SizePackedChar = 4
	// SizeStride is the width of one title scanning step (two slots).
	SizeStride = 2 * SizePackedChar
	// SizeSentinel is the width of a float32 marker window.
	SizeSentinel = 4

	MarkerEndOfHeader = float32(357.0)
	MarkerZone        = float32(299.0)
	// MarkerEpsilon is the float32 machine epsilon (2^-23).
	MarkerEpsilon = float32(1.1920929e-07)

	// MagicPrefix is shared by every known PLT signature, e.g. "#!TDV112".
	MagicPrefix = "#!TDV"
)

const (
	FileTypeFull     = FileType("FULL")
	FileTypeGrid     = FileType("GRID")
	FileTypeSolution = FileType("SOLUTION")
	FileTypeUnknown  = FileType("UNKNOWN")
)

var FileTypes = []FileType{
	FileTypeFull,
	FileTypeGrid,
	FileTypeSolution,
}
