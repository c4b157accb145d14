// Package codec implements wireskema.Codec over concrete wire formats.
//
// Binary (MessagePack) is the default and the only codec that is lossless
// for the whole plain-value model; JSON and YAML are provided for
// debugging and interop with their limits documented per constructor.
package codec

import (
	"fmt"
	"math"
)

// normalize canonicalizes a freshly decoded value into the plain-value
// model: integer kinds become float64, map[any]any becomes map[string]any,
// containers are rebuilt element-wise. Non-string map keys are a decode
// error regardless of wire format.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case nil, bool, string, float64, []byte:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int8:
		return float64(t), nil
	case int16:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case uint8:
		return float64(t), nil
	case uint16:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("codec: integer %d overflows the number model", t)
		}
		return float64(t), nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, ev := range t {
			nv, err := normalize(ev)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, ev := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("codec: non-string map key %v", k)
			}
			nv, err := normalize(ev)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, ev := range t {
			nv, err := normalize(ev)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("codec: unsupported decoded value of type %T", v)
	}
}
