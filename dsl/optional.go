package dsl

import (
	wireskema "github.com/reoring/wireskema"
	js "github.com/reoring/wireskema/jsonschema"
)

// Optional wraps inner so that the absent value (nil) is also accepted.
// A missing map key and an explicit null collapse to the same canonical
// absent state. An optional has no name of its own; failures name the
// inner schema.
func Optional(inner wireskema.Schema) wireskema.Schema {
	return &optionalSchema{inner: inner}
}

type optionalSchema struct {
	inner wireskema.Schema
}

func (s *optionalSchema) Name() string { return s.inner.Name() }

func (s *optionalSchema) Validate(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return s.inner.Validate(v)
}

func (s *optionalSchema) Serialize(v any) ([]byte, error) {
	return wireskema.Encode(s, defaultCodec, v)
}

func (s *optionalSchema) Deserialize(data []byte) (any, error) {
	return wireskema.Decode(s, defaultCodec, data)
}

func (s *optionalSchema) JSONSchema() (*js.Schema, error) {
	return s.inner.JSONSchema()
}

// isOptional lets record projection exclude optional fields from the
// required list.
func isOptional(s wireskema.Schema) bool {
	_, ok := s.(*optionalSchema)
	return ok
}
