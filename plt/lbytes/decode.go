// Package lbytes holds the fixed-width little-endian decoders every other
// PLT package is built on.
//
// The decoders only look at the first N bytes of the given slice and panic when
// fewer are supplied. Callers are expected to check lengths before calling.
package lbytes

import (
	"encoding/binary"
	"math"
)

const (
	SizeInt16   = 2
	SizeInt32   = 4
	SizeFloat32 = 4
	SizeFloat64 = 8
)

func Int16(bs []byte) int16 {
	return int16(binary.LittleEndian.Uint16(bs))
}

func Int32(bs []byte) int32 {
	return int32(binary.LittleEndian.Uint32(bs))
}

func Uint32(bs []byte) uint32 {
	return binary.LittleEndian.Uint32(bs)
}

func Float32(bs []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(bs))
}

func Float64(bs []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(bs))
}
