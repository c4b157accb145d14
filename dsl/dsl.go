package dsl

import (
	"github.com/reoring/wireskema/codec"
)

// defaultCodec is the wire codec nodes bind to unless a builder's
// WithCodec overrides it.
var defaultCodec = codec.Binary()

type stringSet map[string]struct{}

func newStringSet(names []string) stringSet {
	if len(names) == 0 {
		return nil
	}
	s := make(stringSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s stringSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// asNumber canonicalizes any Go numeric kind to float64. The value model
// is IEEE-754 doubles; integer inputs are a Go-caller convenience.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	default:
		return 0, false
	}
}

func enumOf[T any](literals []T) []any {
	if len(literals) == 0 {
		return nil
	}
	out := make([]any, len(literals))
	for i, l := range literals {
		out[i] = l
	}
	return out
}
