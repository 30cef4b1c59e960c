package psig

type (
	Signature struct {
		// RawValue packs the 8 bytes big-endian: byte 0 is the most significant.
		RawValue uint64 `json:"raw_value"`
		// SignedHighWord is the first 4 bytes read as a little-endian int32.
		SignedHighWord int32 `json:"signed_high_word"`
		// RawChars has one character per signature byte, e.g. "#!TDV112".
		RawChars string `json:"raw_chars"`
		// PackedChars holds the characters of the two packed-character groups.
		PackedChars string `json:"packed_chars"`
	}
)
