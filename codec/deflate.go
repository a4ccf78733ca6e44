package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// DeflateCodec implements Codec for the raw DEFLATE bitstream. There is no framing and no checksum, so decoding
// failures are limited to malformed-stream detection by the engine.
type DeflateCodec struct{}

var _ Codec = DeflateCodec{}

func (DeflateCodec) NewEncoder(dst io.Writer, level int) (io.WriteCloser, error) {
	w, err := flate.NewWriter(dst, level)
	if err != nil {
		return nil, fmt.Errorf("create deflate writer error: %w", err)
	}

	return w, nil
}

func (DeflateCodec) NewDecoder(src io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(src), nil
}
