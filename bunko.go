// Package bunko compresses and decompresses byte data, strings, chunked
// streams, and serializable values with a single API surface over the gzip,
// raw DEFLATE, and zlib formats.
//
// Every operation is a synchronous in-memory transformation: each call owns
// its encoder or decoder for the duration of the call and keeps no state
// behind, so the package is safe to use from any number of goroutines without
// coordination.
package bunko

import (
	"fmt"

	"github.com/klauspost/compress/flate"
	"github.com/nguyengg/bunko/codec"
)

// Format indicates which compression format to use for compression and decompression.
//
// The format selects both the framing (headers, trailers, checksums) and the bitstream. Data compressed with one
// format can only be decompressed by supplying the same format again; there is no auto-detection, and a mismatched
// format surfaces as a decompression error.
type Format int

const (
	// FormatGzip frames the DEFLATE bitstream with a gzip header plus CRC-32 and size trailers.
	FormatGzip Format = iota
	// FormatDeflate is the raw DEFLATE bitstream with no framing and no checksum.
	FormatDeflate
	// FormatZlib frames the DEFLATE bitstream with a 2-byte header and an Adler-32 trailer.
	FormatZlib
)

func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatDeflate:
		return "deflate"
	case FormatZlib:
		return "zlib"
	default:
		panic(fmt.Sprintf("unknown format: %d", int(f)))
	}
}

// Ext returns the conventional file name extension for files compressed with this format.
func (f Format) Ext() string {
	switch f {
	case FormatGzip:
		return ".gz"
	case FormatDeflate:
		return ".deflate"
	case FormatZlib:
		return ".zz"
	default:
		panic(fmt.Sprintf("unknown format: %d", int(f)))
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatGzip:
		return "application/gzip"
	case FormatDeflate:
		return "application/octet-stream"
	case FormatZlib:
		return "application/zlib"
	default:
		panic(fmt.Sprintf("unknown format: %d", int(f)))
	}
}

// Codec returns the codec.Codec implementing this format, for callers that want to stream to or from their own
// sinks instead of materializing buffers.
func (f Format) Codec() codec.Codec {
	switch f {
	case FormatGzip:
		return codec.GzipCodec{}
	case FormatDeflate:
		return codec.DeflateCodec{}
	case FormatZlib:
		return codec.ZlibCodec{}
	default:
		panic(fmt.Sprintf("unknown format: %d", int(f)))
	}
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "gzip", "gz":
		return FormatGzip, nil
	case "deflate":
		return FormatDeflate, nil
	case "zlib", "zz":
		return FormatZlib, nil
	default:
		return 0, fmt.Errorf("unknown format: %q", name)
	}
}

// Level is the quality/speed trade-off for compression.
//
// The exact numeric levels are the engine's presets; this package does not invent its own scale.
type Level int

const (
	// LevelFastest optimises for speed at the cost of compression ratio.
	LevelFastest Level = iota
	// LevelDefault is the engine's balanced default.
	LevelDefault
	// LevelBest optimises for compression ratio at the cost of speed.
	LevelBest
)

func (l Level) String() string {
	switch l {
	case LevelFastest:
		return "fastest"
	case LevelDefault:
		return "default"
	case LevelBest:
		return "best"
	default:
		panic(fmt.Sprintf("unknown level: %d", int(l)))
	}
}

// engineLevel maps the level to the engine's numeric preset. The same constants apply to all three formats since
// they share the DEFLATE bitstream.
func (l Level) engineLevel() int {
	switch l {
	case LevelFastest:
		return flate.BestSpeed
	case LevelDefault:
		return flate.DefaultCompression
	case LevelBest:
		return flate.BestCompression
	default:
		panic(fmt.Sprintf("unknown level: %d", int(l)))
	}
}

// ParseLevel returns the Level with the given name.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "fastest", "fast":
		return LevelFastest, nil
	case "default":
		return LevelDefault, nil
	case "best":
		return LevelBest, nil
	default:
		return 0, fmt.Errorf("unknown level: %q", name)
	}
}
