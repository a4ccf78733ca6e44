package bunko

// CompressRaw compresses input as a raw DEFLATE bitstream with no framing.
func CompressRaw(input []byte, level Level) ([]byte, error) {
	return Compress(input, FormatDeflate, level)
}

// DecompressRaw decompresses a raw DEFLATE bitstream.
//
// With no container framing there is no checksum to validate; failures are limited to malformed-stream detection
// by the engine.
func DecompressRaw(input []byte) ([]byte, error) {
	return Decompress(input, FormatDeflate)
}
