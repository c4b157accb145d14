package dsl

import (
	"slices"

	wireskema "github.com/reoring/wireskema"
	js "github.com/reoring/wireskema/jsonschema"
)

// Extend starts an extension builder over a record-like base. Own fields
// shadow identically named base fields: the base is validated with the
// shadowed names excluded, then own-field results overwrite base results.
func Extend(name string, base wireskema.FieldSchema) *ExtendBuilder {
	return &ExtendBuilder{
		name: name,
		base: base,
		own:  Record(name),
		wire: defaultCodec,
	}
}

// ExtendBuilder accumulates the extension's own field table.
type ExtendBuilder struct {
	name string
	base wireskema.FieldSchema
	own  *RecordBuilder
	wire wireskema.Codec
}

// Field declares an own field, shadowing any base field of the same name.
func (b *ExtendBuilder) Field(name string, s wireskema.Schema) *ExtendBuilder {
	b.own.Field(name, s)
	return b
}

// WithCodec rebinds Serialize/Deserialize to c.
func (b *ExtendBuilder) WithCodec(c wireskema.Codec) *ExtendBuilder {
	b.wire = c
	return b
}

// Build returns the extension schema.
func (b *ExtendBuilder) Build() wireskema.FieldSchema {
	own := b.own.Build().(*recordSchema)
	own.wire = b.wire
	return &extendSchema{name: b.name, base: b.base, own: own, wire: b.wire}
}

type extendSchema struct {
	name string
	base wireskema.FieldSchema
	own  *recordSchema
	wire wireskema.Codec
}

func (s *extendSchema) Name() string { return s.name }

func (s *extendSchema) Validate(v any) (any, error) {
	out, err := s.ValidateIgnoring(v, nil)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *extendSchema) ValidateIgnoring(v any, ignored []string) (map[string]any, error) {
	baseIgnore := append(s.own.FieldNames(), ignored...)
	out, err := s.base.ValidateIgnoring(v, baseIgnore)
	if err != nil {
		return nil, err
	}
	ownOut, err := s.own.ValidateIgnoring(v, ignored)
	if err != nil {
		return nil, err
	}
	for k, fv := range ownOut {
		out[k] = fv
	}
	return out, nil
}

func (s *extendSchema) HasField(name string) bool {
	return s.own.HasField(name) || s.base.HasField(name)
}

func (s *extendSchema) FieldNames() []string {
	names := s.base.FieldNames()
	for _, n := range s.own.FieldNames() {
		if !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	return names
}

func (s *extendSchema) ValidateField(name string, v any) (any, error) {
	if s.own.HasField(name) {
		return s.own.ValidateField(name, v)
	}
	return s.base.ValidateField(name, v)
}

func (s *extendSchema) Serialize(v any) ([]byte, error) {
	return wireskema.Encode(s, s.wire, v)
}

func (s *extendSchema) Deserialize(data []byte) (any, error) {
	return wireskema.Decode(s, s.wire, data)
}

func (s *extendSchema) JSONSchema() (*js.Schema, error) {
	ownJS, err := s.own.JSONSchema()
	if err != nil {
		return nil, err
	}
	baseJS, err := s.base.JSONSchema()
	if err != nil {
		return nil, err
	}
	if baseJS.Type != "object" {
		return ownJS, nil
	}
	merged := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}, AdditionalProperties: true}
	for k, ps := range baseJS.Properties {
		merged.Properties[k] = ps
	}
	for _, k := range baseJS.Required {
		if !s.own.HasField(k) {
			merged.Required = append(merged.Required, k)
		}
	}
	for k, ps := range ownJS.Properties {
		merged.Properties[k] = ps
	}
	merged.Required = append(merged.Required, ownJS.Required...)
	return merged, nil
}
