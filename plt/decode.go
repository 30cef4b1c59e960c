package plt

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"plt-reader/plt/pheader"
)

func DecodeHeader(bs []byte) (*pheader.Header, error) {
	header, err := pheader.Decode(bs)
	if err != nil {
		return nil, errors.Wrap(err, "plt.DecodeHeader error")
	}
	return header, nil
}

// DecodePLT decodes the header in bs to indented JSON. With debug set, the
// header struct is dumped as is; otherwise the friendlier ordered view of
// ToLinkedHashMap is used.
func DecodePLT(bs []byte, debug bool) ([]byte, error) {
	header, err := DecodeHeader(bs)
	if err != nil {
		return nil, err
	}

	if debug {
		headerBytes, err := json.MarshalIndent(header, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "plt.DecodePLT error marshalling header")
		}
		return headerBytes, nil
	}

	lhm := ToLinkedHashMap(*header)
	lhmBytes, err := json.MarshalIndent(lhm, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "plt.DecodePLT error marshalling ordered header")
	}
	return lhmBytes, nil
}

func ToLinkedHashMap(header pheader.Header) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("magic_number", header.Signature.RawChars)
	lhm.Set("version", header.Signature.Version())
	lhm.Set("byte_order", header.ByteOrder)
	lhm.Set("file_type", header.FileType)
	lhm.Set("title", header.Title)
	lhm.Set("num_vars", header.NumVars)
	lhm.Set("var_names", header.VarNames)
	lhm.Set("end_of_header", header.EndOfHeader)
	lhm.Set("zone_markers", header.ZoneMarkers)
	lhm.Set("digest", fmt.Sprintf("%016x", header.Digest))
	lhm.Set(
		"issues",
		lo.Map(
			header.Issues,
			func(err error, _ int) string {
				return err.Error()
			},
		),
	)
	return lhm
}
