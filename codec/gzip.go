package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec implements Codec for the gzip format: a header plus CRC-32 and size trailers around the DEFLATE
// bitstream.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

func (GzipCodec) NewEncoder(dst io.Writer, level int) (io.WriteCloser, error) {
	w, err := gzip.NewWriterLevel(dst, level)
	if err != nil {
		return nil, fmt.Errorf("create gzip writer error: %w", err)
	}

	return w, nil
}

func (GzipCodec) NewDecoder(src io.Reader) (io.ReadCloser, error) {
	r, err := gzip.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("create gzip reader error: %w", err)
	}

	return r, nil
}
