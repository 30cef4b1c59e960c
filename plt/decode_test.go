package plt

import (
	"encoding/json"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plt-reader/plt/lbytes"
)

func createPLTBytes() []byte {
	bs := []byte("#!TDV112")
	bs = append(bs, lbytes.EncodeInt16(1)...)
	bs = append(bs, 0, 0)
	bs = append(bs, lbytes.EncodeInt16(0)...)
	bs = append(bs, 0, 0)
	bs = append(bs, lbytes.EncodePackedString("Cube <3D>")...)
	bs = append(bs, lbytes.EncodeInt32(3)...)
	bs = append(bs, lbytes.EncodePackedString("X")...)
	bs = append(bs, lbytes.EncodePackedString("Y")...)
	bs = append(bs, lbytes.EncodePackedString("Z")...)
	bs = append(bs, lbytes.EncodeFloat32(299)...)
	bs = append(bs, lbytes.EncodeFloat32(357)...)
	bs = append(bs, lbytes.EncodeFloat32(299)...)
	return bs
}

func TestIsPLTFile(t *testing.T) {
	assert.True(t, IsPLTFile(createPLTBytes()))
	assert.False(t, IsPLTFile([]byte("#!TD")))
	assert.False(t, IsPLTFile([]byte{0x01, 0xB1, 0x00, 0x00, 0, 0, 0, 0}))
}

func TestToLinkedHashMap(t *testing.T) {
	header, err := DecodeHeader(createPLTBytes())
	require.NoError(t, err)

	lhm := ToLinkedHashMap(*header)
	assert.Equal(
		t,
		[]string{
			"magic_number",
			"version",
			"byte_order",
			"file_type",
			"title",
			"num_vars",
			"var_names",
			"end_of_header",
			"zone_markers",
			"digest",
			"issues",
		},
		lhm.Keys(),
	)
	title, ok := lhm.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Cube <3D>", title)
	issues, _ := lhm.Get("issues")
	assert.Equal(t, []string{}, issues)
}

func TestDecodePLT(t *testing.T) {
	bs, err := DecodePLT(createPLTBytes(), false)
	require.NoError(t, err)

	lhm := orderedmap.New()
	require.NoError(t, json.Unmarshal(bs, lhm))
	assert.Equal(t, "magic_number", lhm.Keys()[0])
	assert.Contains(t, string(bs), `"file_type": "FULL"`)

	// 16 + title (10 groups) + count + 3 names of 2 groups
	varsEnd := 16 + 40 + 4 + 3*8
	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(bs, &decoded))
	assert.Equal(t, float64(varsEnd+8), decoded["end_of_header"])
	assert.Equal(t, []any{float64(varsEnd)}, decoded["zone_markers"])
	assert.Equal(t, "112", decoded["version"])
	assert.Equal(t, "Cube <3D>", decoded["title"])
}

func TestDecodePLT_Debug(t *testing.T) {
	bs, err := DecodePLT(createPLTBytes(), true)
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(bs, &decoded))
	signature, ok := decoded["signature"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#!TDV112", signature["raw_chars"])
	assert.Equal(t, []any{"X", "Y", "Z"}, decoded["var_names"])
}

func TestDecodePLT_Truncated(t *testing.T) {
	bs, err := DecodePLT([]byte("#!TD"), false)
	assert.Nil(t, bs)
	assert.Error(t, err)
}
