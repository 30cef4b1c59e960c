package psig

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plt-reader/plt/perr"
)

func TestDecode_RawValue(t *testing.T) {
	signature, err := Decode([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01})
	require.NoError(t, err)
	assert.Equal(t, uint64(72057594037927937), signature.RawValue)
	assert.Equal(t, int32(1), signature.SignedHighWord)
	assert.Equal(t, "\x01\x00\x00\x00\x00\x00\x00\x01", signature.RawChars)
	// the second group is non-zero, so its first byte counts even though it is 0x00
	assert.Equal(t, "\x01\x00", signature.PackedChars)
}

func TestDecode_PackedChars(t *testing.T) {
	signature, err := Decode([]byte{0x2e, 0x00, 0x00, 0x00, 0x2e, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, "..", signature.PackedChars)

	signature, err = Decode([]byte{0x2e, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, ".", signature.PackedChars)

	signature, err = Decode(make([]byte, 8))
	require.NoError(t, err)
	assert.Equal(t, "", signature.PackedChars)
	assert.Equal(t, uint64(0), signature.RawValue)
}

func TestDecode_MagicNumber(t *testing.T) {
	bs := []byte{0x23, 0x21, 0x54, 0x44, 0x56, 0x31, 0x31, 0x32}
	signature, err := Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, "#!TDV112", signature.RawChars)
	assert.Equal(t, "112", signature.Version())
	assert.Equal(t, uint64(0x2321544456313132), signature.RawValue)
	assert.Equal(t, int32(0x44542123), signature.SignedHighWord)
	assert.True(t, IsValidMagicNumber(bs))

	// extra bytes are ignored
	longer, err := Decode(append(bs, 0x01, 0x00))
	require.NoError(t, err)
	assert.Equal(t, signature, longer)
}

func TestDecode_Truncated(t *testing.T) {
	for n := 0; n < 8; n++ {
		signature, err := Decode(make([]byte, n))
		assert.Nil(t, signature)
		truncated := perr.ErrTruncatedInput{}
		require.True(t, errors.As(err, &truncated))
		assert.Equal(t, n, truncated.Got)
	}
}

func TestIsValidMagicNumber(t *testing.T) {
	assert.False(t, IsValidMagicNumber([]byte("#!TDV")))
	assert.False(t, IsValidMagicNumber([]byte("#!TDX112")))
	assert.True(t, IsValidMagicNumber([]byte("#!TDV191 and more")))
	assert.Equal(t, "", Signature{RawChars: "ABCDEFGH"}.Version())
}
