package bunko

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures any operation in this package can return.
type ErrorKind int

const (
	// KindCompression indicates the encoder failed while compressing or finalizing.
	KindCompression ErrorKind = iota + 1

	// KindDecompression indicates the compressed input is malformed, truncated, or was compressed with a
	// different format than the one supplied.
	KindDecompression

	// KindUtf8 indicates decompression succeeded but the result is not valid UTF-8. Only DecompressToString
	// returns this kind.
	KindUtf8

	// KindSerialization indicates the serializer could not encode the value in CompressStruct.
	KindSerialization

	// KindDeserialization indicates the serializer could not decode the decompressed bytes in DecompressStruct.
	KindDeserialization
)

func (k ErrorKind) String() string {
	switch k {
	case KindCompression:
		return "compression"
	case KindDecompression:
		return "decompression"
	case KindUtf8:
		return "utf-8"
	case KindSerialization:
		return "serialization"
	case KindDeserialization:
		return "deserialization"
	default:
		return "unknown"
	}
}

// Error is returned by every fallible operation in this package. It carries the kind of failure along with the
// underlying engine or serializer error as context.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is or wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
