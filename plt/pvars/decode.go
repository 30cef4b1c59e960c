// Package pvars reads the variable-name table that follows the variable count.
package pvars

import (
	"github.com/pkg/errors"

	"plt-reader/plt/ptitle"
)

type (
	Block struct {
		Names []string `json:"names"`
		// Offset is the number of bytes taken by the names read successfully.
		Offset int `json:"offset"`
	}
)

// DecodeBlock reads up to numVars packed-character names back to back.
//
// A name that cannot be decoded stops the loop. The returned Block then holds
// the names read so far, and the error says why reading stopped; it is
// meant as a diagnostic, not as a reason to drop the Block.
func DecodeBlock(bs []byte, numVars int32) (Block, error) {
	block := Block{
		Names: make([]string, 0),
	}
	for i := int32(0); i < numVars; i++ {
		title, err := ptitle.Decode(bs[block.Offset:])
		if err != nil {
			err := errors.Wrapf(err, "pvars.DecodeBlock error reading name %d of %d", i+1, numVars)
			return block, err
		}
		block.Names = append(block.Names, title.Text)
		block.Offset += title.Offset
	}

	return block, nil
}
