package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

// ReadSource returns the content of the file at path. Files compressed with
// zstd or gzip are inflated, everything else is returned as is.
func ReadSource(path string) ([]byte, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `ReadSource error reading "%s"`, path)
	}

	switch {
	case bytes.HasPrefix(bs, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, errors.Wrap(err, "ReadSource error creating zstd reader")
		}
		defer dec.Close()
		out, err := dec.DecodeAll(bs, nil)
		if err != nil {
			return nil, errors.Wrapf(err, `ReadSource error inflating zstd file "%s"`, path)
		}
		return out, nil
	case bytes.HasPrefix(bs, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(bs))
		if err != nil {
			return nil, errors.Wrapf(err, `ReadSource error opening gzip file "%s"`, path)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, errors.Wrapf(err, `ReadSource error inflating gzip file "%s"`, path)
		}
		return out, nil
	}
	return bs, nil
}
