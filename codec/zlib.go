package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCodec implements Codec for the zlib format: a 2-byte header and an Adler-32 trailer around the DEFLATE
// bitstream.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

func (ZlibCodec) NewEncoder(dst io.Writer, level int) (io.WriteCloser, error) {
	w, err := zlib.NewWriterLevel(dst, level)
	if err != nil {
		return nil, fmt.Errorf("create zlib writer error: %w", err)
	}

	return w, nil
}

func (ZlibCodec) NewDecoder(src io.Reader) (io.ReadCloser, error) {
	r, err := zlib.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("create zlib reader error: %w", err)
	}

	return r, nil
}
