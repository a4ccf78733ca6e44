package bunko

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Decompress decompresses input that was compressed with the given format.
//
// The format must be the one used to compress: mismatched framing surfaces as a decompression error, never as a
// silently wrong result.
func Decompress(input []byte, format Format) ([]byte, error) {
	return decompressReader(bytes.NewReader(input), format)
}

// DecompressStream decompresses an ordered sequence of compressed chunks into the original contiguous bytes.
//
// The chunks are consumed in order without being concatenated first.
func DecompressStream(chunks [][]byte, format Format) ([]byte, error) {
	readers := make([]io.Reader, len(chunks))
	for i, chunk := range chunks {
		readers[i] = bytes.NewReader(chunk)
	}

	return decompressReader(io.MultiReader(readers...), format)
}

// DecompressToString decompresses gzip-compressed data and decodes the result as UTF-8.
//
// Invalid UTF-8 after successful decompression returns a KindUtf8 error, distinct from the KindDecompression
// errors that malformed compressed input produces.
func DecompressToString(input []byte) (string, error) {
	data, err := Decompress(input, FormatGzip)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", &Error{Kind: KindUtf8, Err: errors.New("decompressed data is not valid UTF-8")}
	}

	return string(data), nil
}

// NewDecoder creates a decoder that decompresses contents from src, for callers that stream from their own
// sources. Caller is responsible for closing the decoder.
func NewDecoder(src io.Reader, format Format) (io.ReadCloser, error) {
	dec, err := format.Codec().NewDecoder(src)
	if err != nil {
		return nil, &Error{Kind: KindDecompression, Err: err}
	}

	return dec, nil
}

func decompressReader(src io.Reader, format Format) (_ []byte, err error) {
	dec, err := NewDecoder(src, format)
	if err != nil {
		return nil, err
	}

	finished := false
	defer func() {
		if !finished {
			_ = dec.Close()
		}
	}()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, &Error{Kind: KindDecompression, Err: fmt.Errorf("decompress error: %w", err)}
	}

	finished = true
	if err = dec.Close(); err != nil {
		return nil, &Error{Kind: KindDecompression, Err: fmt.Errorf("finish decompression error: %w", err)}
	}

	return data, nil
}
