package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	wireskema "github.com/reoring/wireskema"
)

// Binary returns the default wire codec, backed by MessagePack. It is
// lossless for the whole plain-value model: booleans, strings, float64
// including NaN and ±Inf, byte sequences, string-keyed mappings, sequences,
// and nil.
func Binary() wireskema.Codec { return binaryCodec{} }

type binaryCodec struct{}

func (binaryCodec) Pack(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (binaryCodec) Unpack(data []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v)
}
