package dsl

import (
	"fmt"

	wireskema "github.com/reoring/wireskema"
	js "github.com/reoring/wireskema/jsonschema"
)

// List returns a sequence schema that validates each element against item.
// Validation builds a fresh sequence; the input is never aliased.
func List(name string, item wireskema.Schema) *ListSchema {
	return &ListSchema{name: name, item: item, wire: defaultCodec}
}

// ListSchema implements wireskema.Schema for sequences.
type ListSchema struct {
	name string
	item wireskema.Schema
	wire wireskema.Codec
}

// WithCodec rebinds Serialize/Deserialize to c.
func (s *ListSchema) WithCodec(c wireskema.Codec) *ListSchema {
	s.wire = c
	return s
}

func (s *ListSchema) Name() string { return s.name }

func (s *ListSchema) Validate(v any) (any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeNotAnArray,
			Message: "expected sequence, got " + wireskema.RenderValue(v),
			Value:   v,
		}
	}
	out := make([]any, len(src))
	for i, ev := range src {
		fv, err := s.item.Validate(ev)
		if err != nil {
			if it, ok := wireskema.AsIssue(err); ok {
				it.Message = fmt.Sprintf("element %d: %s", i, it.Message)
				return nil, it
			}
			return nil, err
		}
		out[i] = fv
	}
	return out, nil
}

func (s *ListSchema) Serialize(v any) ([]byte, error) {
	return wireskema.Encode(s, s.wire, v)
}

func (s *ListSchema) Deserialize(data []byte) (any, error) {
	return wireskema.Decode(s, s.wire, data)
}

func (s *ListSchema) JSONSchema() (*js.Schema, error) {
	items, err := s.item.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: items}, nil
}
