package bunko

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

type manifest struct {
	Name     string            `json:"name"`
	Sizes    []int             `json:"sizes"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func TestStructRoundTrip(t *testing.T) {
	v := manifest{
		Name:     "archive-2024",
		Sizes:    []int{0, 1, 1024, 1 << 20},
		Metadata: map[string]string{"owner": "bunko", "tier": "hot"},
	}

	for _, format := range testFormats {
		for _, level := range testLevels {
			t.Run(format.String()+"/"+level.String(), func(t *testing.T) {
				compressed, err := CompressStruct(v, format, level)
				require.NoError(t, err)
				assert.NotEmpty(t, compressed)

				var got manifest
				require.NoError(t, DecompressStruct(compressed, format, &got))
				assert.Equal(t, v, got)
			})
		}
	}
}

func TestStructRoundTrip_Proto(t *testing.T) {
	fields := map[string]any{
		"name":  "gopher",
		"count": float64(42),
		"tags":  []any{"compression", "serialization"},
	}

	v, err := structpb.NewStruct(fields)
	require.NoError(t, err)

	compressed, err := CompressStruct(v, FormatZlib, LevelDefault, WithSerializer(ProtoSerializer{}))
	require.NoError(t, err)

	got := &structpb.Struct{}
	require.NoError(t, DecompressStruct(compressed, FormatZlib, got, WithSerializer(ProtoSerializer{})))
	assert.Equal(t, fields, got.AsMap())
}

func TestCompressStruct_SerializationError(t *testing.T) {
	_, err := CompressStruct(make(chan int), FormatGzip, LevelDefault)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSerialization))

	_, err = CompressStruct(42, FormatGzip, LevelDefault, WithSerializer(ProtoSerializer{}))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSerialization))
}

func TestDecompressStruct_DeserializationError(t *testing.T) {
	compressed, err := Compress([]byte("definitely not json"), FormatGzip, LevelDefault)
	require.NoError(t, err)

	var got manifest
	err = DecompressStruct(compressed, FormatGzip, &got)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDeserialization))
}

func TestDecompressStruct_DecompressionError(t *testing.T) {
	var got manifest
	err := DecompressStruct([]byte("not compressed"), FormatGzip, &got)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDecompression))
}
