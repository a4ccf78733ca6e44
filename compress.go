package bunko

import (
	"bytes"
	"fmt"
	"io"
)

// Compress compresses input in one shot using the given format and level.
//
// The output includes the format's framing, so even empty input produces a valid, non-empty result that
// decompresses back to empty. Short inputs may grow rather than shrink because of that framing overhead.
func Compress(input []byte, format Format, level Level) ([]byte, error) {
	return compressChunks([][]byte{input}, format, level)
}

// CompressStream compresses an ordered sequence of chunks into one contiguous output.
//
// All chunks go through a single encoder that is finalized once at the end, so for any chunking of a buffer the
// output is byte-identical to compressing the concatenated buffer in one shot.
func CompressStream(chunks [][]byte, format Format, level Level) ([]byte, error) {
	return compressChunks(chunks, format, level)
}

// CompressWithBuffer re-chunks input into pieces of at most bufferSize bytes and feeds them through a single
// encoder.
//
// A bufferSize that is zero, negative, or at least the input length degenerates to one chunk covering the whole
// input; in every case the output is byte-identical to Compress.
func CompressWithBuffer(input []byte, format Format, level Level, bufferSize int) ([]byte, error) {
	if bufferSize <= 0 || bufferSize >= len(input) {
		return compressChunks([][]byte{input}, format, level)
	}

	chunks := make([][]byte, 0, (len(input)+bufferSize-1)/bufferSize)
	for len(input) > bufferSize {
		chunks = append(chunks, input[:bufferSize])
		input = input[bufferSize:]
	}

	return compressChunks(append(chunks, input), format, level)
}

// CompressString compresses text with the format fixed to gzip.
func CompressString(text string, level Level) ([]byte, error) {
	return Compress([]byte(text), FormatGzip, level)
}

// NewEncoder creates an encoder that compresses at the given level into dst, for callers that stream to their own
// sinks. The encoder must be closed exactly once to flush internal buffering and write the format's trailer.
func NewEncoder(dst io.Writer, format Format, level Level) (io.WriteCloser, error) {
	enc, err := format.Codec().NewEncoder(dst, level.engineLevel())
	if err != nil {
		return nil, &Error{Kind: KindCompression, Err: err}
	}

	return enc, nil
}

// compressChunks drives the open-encoder/feed/close-once protocol shared by all compression paths. The encoder is
// closed on every exit path; on success the single Close both finalizes the stream and surfaces any buffered write
// error.
func compressChunks(chunks [][]byte, format Format, level Level) (_ []byte, err error) {
	var buf bytes.Buffer

	enc, err := NewEncoder(&buf, format, level)
	if err != nil {
		return nil, err
	}

	finished := false
	defer func() {
		if !finished {
			_ = enc.Close()
		}
	}()

	for _, chunk := range chunks {
		if _, err = enc.Write(chunk); err != nil {
			return nil, &Error{Kind: KindCompression, Err: fmt.Errorf("compress error: %w", err)}
		}
	}

	finished = true
	if err = enc.Close(); err != nil {
		return nil, &Error{Kind: KindCompression, Err: fmt.Errorf("finish compression error: %w", err)}
	}

	return buf.Bytes(), nil
}
