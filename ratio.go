package bunko

// CompressionRatio returns the size reduction as a fraction of the original size; 0.75 means the compressed data
// is a quarter of the original.
//
// Returns exactly 0.0 when originalSize is zero. The ratio is negative when framing overhead makes the compressed
// data larger than the original, which is expected for short inputs.
func CompressionRatio(originalSize, compressedSize int) float64 {
	if originalSize == 0 {
		return 0.0
	}

	return 1.0 - float64(compressedSize)/float64(originalSize)
}
