package lbytes

import (
	"encoding/binary"
	"math"
)

func EncodeInt16(value int16) []byte {
	bs := make([]byte, SizeInt16)
	binary.LittleEndian.PutUint16(bs, uint16(value))
	return bs
}

func EncodeInt32(value int32) []byte {
	bs := make([]byte, SizeInt32)
	binary.LittleEndian.PutUint32(bs, uint32(value))
	return bs
}

func EncodeFloat32(value float32) []byte {
	bs := make([]byte, SizeFloat32)
	binary.LittleEndian.PutUint32(bs, math.Float32bits(value))
	return bs
}

// EncodePackedString lays s out the way PLT strings are stored: one 4-byte
// group per character, followed by a zero group.
func EncodePackedString(s string) []byte {
	bs := make([]byte, 0, (len(s)+1)*SizeInt32)
	for i := 0; i < len(s); i++ {
		bs = append(bs, EncodeInt32(int32(s[i]))...)
	}
	bs = append(bs, EncodeInt32(0)...)
	return bs
}
