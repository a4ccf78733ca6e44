package bunko

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{name: "gzip", want: FormatGzip},
		{name: "gz", want: FormatGzip},
		{name: "deflate", want: FormatDeflate},
		{name: "zlib", want: FormatZlib},
		{name: "zz", want: FormatZlib},
		{name: "zstd", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    Level
		wantErr bool
	}{
		{name: "fastest", want: LevelFastest},
		{name: "fast", want: LevelFastest},
		{name: "default", want: LevelDefault},
		{name: "best", want: LevelBest},
		{name: "ultra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Accessors(t *testing.T) {
	assert.Equal(t, ".gz", FormatGzip.Ext())
	assert.Equal(t, ".deflate", FormatDeflate.Ext())
	assert.Equal(t, ".zz", FormatZlib.Ext())

	assert.Equal(t, "application/gzip", FormatGzip.ContentType())
	assert.Equal(t, "application/octet-stream", FormatDeflate.ContentType())
	assert.Equal(t, "application/zlib", FormatZlib.ContentType())

	for _, format := range testFormats {
		assert.NotNil(t, format.Codec())
	}
}

func TestCompressionRatio(t *testing.T) {
	tests := []struct {
		name           string
		originalSize   int
		compressedSize int
		want           float64
	}{
		{name: "zero original", originalSize: 0, compressedSize: 100, want: 0.0},
		{name: "zero both", originalSize: 0, compressedSize: 0, want: 0.0},
		{name: "quarter", originalSize: 100, compressedSize: 25, want: 0.75},
		{name: "no reduction", originalSize: 100, compressedSize: 100, want: 0.0},
		{name: "expansion", originalSize: 100, compressedSize: 125, want: -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CompressionRatio(tt.originalSize, tt.compressedSize), 1e-9)
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "compression", KindCompression.String())
	assert.Equal(t, "decompression", KindDecompression.String())
	assert.Equal(t, "utf-8", KindUtf8.String())
	assert.Equal(t, "serialization", KindSerialization.String())
	assert.Equal(t, "deserialization", KindDeserialization.String())
}

func TestError_Rendering(t *testing.T) {
	_, err := Decompress([]byte("garbage"), FormatGzip)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decompression error: ")
}
