package lbytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt32(t *testing.T) {
	assert.Equal(t, int32(50594051), Int32([]byte{3, 1, 4, 3}))
	assert.Equal(t, int32(1312301580), Int32([]byte{12, 34, 56, 78}))
	assert.Equal(t, int32(-1), Int32([]byte{0xff, 0xff, 0xff, 0xff}))
	// only the first 4 bytes count
	assert.Equal(t, int32(47), Int32([]byte{0x2f, 0, 0, 0, 0x99, 0x99}))
}

func TestInt16(t *testing.T) {
	assert.Equal(t, int16(1), Int16([]byte{0x01, 0x00}))
	assert.Equal(t, int16(-2), Int16([]byte{0xfe, 0xff}))
}

func TestUint32(t *testing.T) {
	assert.Equal(t, uint32(0), Uint32([]byte{0, 0, 0, 0}))
	assert.Equal(t, uint32(0xffffffff), Uint32([]byte{0xff, 0xff, 0xff, 0xff}))
}

func TestFloats(t *testing.T) {
	assert.Equal(t, float32(357.0), Float32(EncodeFloat32(357.0)))
	assert.Equal(t, float32(299.0), Float32([]byte{0x00, 0x80, 0x95, 0x43}))
	assert.Equal(t, 1.5, Float64([]byte{0, 0, 0, 0, 0, 0, 0xf8, 0x3f}))
}

func TestShortInputPanics(t *testing.T) {
	assert.Panics(t, func() { Int16([]byte{1}) })
	assert.Panics(t, func() { Int32([]byte{1, 2, 3}) })
	assert.Panics(t, func() { Float32(nil) })
	assert.Panics(t, func() { Float64([]byte{1, 2, 3, 4}) })
}

func TestEncodePackedString(t *testing.T) {
	assert.Equal(
		t,
		[]byte{
			'a', 0, 0, 0,
			'b', 0, 0, 0,
			0, 0, 0, 0,
		},
		EncodePackedString("ab"),
	)
	assert.Equal(t, []byte{0, 0, 0, 0}, EncodePackedString(""))
}
