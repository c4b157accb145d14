package codec

import (
	json "github.com/goccy/go-json"

	wireskema "github.com/reoring/wireskema"
)

// JSON returns a codec over JSON text, intended for debugging and interop.
// It is lossy at the model's edges: byte sequences encode as base64 strings
// and decode back as strings, and NaN/±Inf cannot be encoded at all. Use
// Binary for anything that must round-trip.
func JSON() wireskema.Codec { return jsonCodec{} }

type jsonCodec struct{}

func (jsonCodec) Pack(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unpack(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v)
}
