package bunko

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Serializer converts values to and from a canonical byte encoding. The struct codec composes a serializer with
// compression; it guarantees only that the bytes in between are not corrupted, not that the encoding itself is
// deterministic.
type Serializer interface {
	Serialize(v any) ([]byte, error)
	Deserialize(data []byte, v any) error
}

// JSONSerializer implements Serializer with encoding/json. This is the default serializer for CompressStruct and
// DecompressStruct.
type JSONSerializer struct{}

var _ Serializer = JSONSerializer{}

func (JSONSerializer) Serialize(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONSerializer) Deserialize(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ProtoSerializer implements Serializer for protobuf message payloads. Values that are not proto.Message are
// rejected.
type ProtoSerializer struct{}

var _ Serializer = ProtoSerializer{}

func (ProtoSerializer) Serialize(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("not a proto.Message: %T", v)
	}

	return proto.Marshal(m)
}

func (ProtoSerializer) Deserialize(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("not a proto.Message: %T", v)
	}

	return proto.Unmarshal(data, m)
}

// StructOptions customises CompressStruct and DecompressStruct.
type StructOptions struct {
	// Serializer converts the value to and from its canonical byte encoding.
	//
	// Default to JSONSerializer.
	Serializer Serializer
}

// WithSerializer overrides the serializer used by CompressStruct and DecompressStruct.
func WithSerializer(s Serializer) func(*StructOptions) {
	return func(opts *StructOptions) {
		opts.Serializer = s
	}
}

// CompressStruct serializes v into its canonical byte encoding then compresses those bytes with the given format
// and level.
func CompressStruct(v any, format Format, level Level, optFns ...func(*StructOptions)) ([]byte, error) {
	opts := newStructOptions(optFns)

	data, err := opts.Serializer.Serialize(v)
	if err != nil {
		return nil, &Error{Kind: KindSerialization, Err: err}
	}

	return Compress(data, format, level)
}

// DecompressStruct decompresses input with the given format then deserializes the result into out, which must be
// a pointer to the value (or the proto.Message itself when using ProtoSerializer).
func DecompressStruct(input []byte, format Format, out any, optFns ...func(*StructOptions)) error {
	opts := newStructOptions(optFns)

	data, err := Decompress(input, format)
	if err != nil {
		return err
	}

	if err = opts.Serializer.Deserialize(data, out); err != nil {
		return &Error{Kind: KindDeserialization, Err: err}
	}

	return nil
}

func newStructOptions(optFns []func(*StructOptions)) *StructOptions {
	opts := &StructOptions{Serializer: JSONSerializer{}}
	for _, fn := range optFns {
		fn(opts)
	}

	return opts
}
