// Package codec provides the encoder and decoder constructors for each supported compression format.
package codec

import (
	"io"
)

// Codec has methods to create compressor/encoder and decompressor/decoder for one compression format.
type Codec interface {
	// NewEncoder creates an encoder that compresses at the given level into dst.
	//
	// The level uses the engine's scale (see flate.BestSpeed, flate.DefaultCompression, and
	// flate.BestCompression); the same constants apply to all formats since they share the DEFLATE bitstream.
	// The encoder must be closed exactly once to flush internal buffering and write any trailer bytes the
	// format requires; until then the output is incomplete.
	NewEncoder(dst io.Writer, level int) (io.WriteCloser, error)

	// NewDecoder creates a decoder to decompress contents from the given io.Reader.
	NewDecoder(src io.Reader) (io.ReadCloser, error)
}
