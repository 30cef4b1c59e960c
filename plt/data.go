// Package plt stores the code to decode the header of Tecplot binary (PLT) files.
package plt

import (
	"plt-reader/plt/psig"
)

func IsPLTFile(bs []byte) bool {
	return psig.IsValidMagicNumber(bs)
}
