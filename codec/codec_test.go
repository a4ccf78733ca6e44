package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("every codec must reproduce its input exactly. "), 64)

	tests := []struct {
		name  string
		codec Codec
	}{
		{name: "gzip", codec: GzipCodec{}},
		{name: "deflate", codec: DeflateCodec{}},
		{name: "zlib", codec: ZlibCodec{}},
	}

	for _, tt := range tests {
		for _, level := range []int{flate.BestSpeed, flate.DefaultCompression, flate.BestCompression} {
			t.Run(tt.name, func(t *testing.T) {
				var buf bytes.Buffer

				enc, err := tt.codec.NewEncoder(&buf, level)
				require.NoError(t, err)

				_, err = enc.Write(data)
				require.NoError(t, err)
				require.NoError(t, enc.Close())
				assert.NotEmpty(t, buf.Bytes())

				dec, err := tt.codec.NewDecoder(bytes.NewReader(buf.Bytes()))
				require.NoError(t, err)
				defer dec.Close()

				got, err := io.ReadAll(dec)
				require.NoError(t, err)
				assert.Equal(t, data, got)
			})
		}
	}
}

func TestNewEncoder_InvalidLevel(t *testing.T) {
	for _, c := range []Codec{GzipCodec{}, DeflateCodec{}, ZlibCodec{}} {
		var buf bytes.Buffer
		_, err := c.NewEncoder(&buf, 42)
		assert.Error(t, err)
	}
}
