package dsl

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	wireskema "github.com/reoring/wireskema"
	js "github.com/reoring/wireskema/jsonschema"
)

// Record starts a record builder. Field order is insertion order: it
// decides which failure is reported first and how fields enumerate in the
// JSON Schema projection, never correctness.
func Record(name string) *RecordBuilder {
	return &RecordBuilder{
		name:   name,
		fields: orderedmap.New[string, wireskema.Schema](),
		wire:   defaultCodec,
	}
}

// RecordBuilder accumulates an ordered field table; Build produces the
// immutable schema node.
type RecordBuilder struct {
	name   string
	fields *orderedmap.OrderedMap[string, wireskema.Schema]
	wire   wireskema.Codec
}

// Field declares a field. Re-declaring a name replaces the schema but
// keeps the original position.
func (b *RecordBuilder) Field(name string, s wireskema.Schema) *RecordBuilder {
	b.fields.Set(name, s)
	return b
}

// WithCodec rebinds Serialize/Deserialize to c.
func (b *RecordBuilder) WithCodec(c wireskema.Codec) *RecordBuilder {
	b.wire = c
	return b
}

// Build returns the record schema. The field table is copied so the
// builder can be reused without aliasing the built node.
func (b *RecordBuilder) Build() wireskema.FieldSchema {
	return &recordSchema{name: b.name, fields: copyFields(b.fields), wire: b.wire}
}

func copyFields(src *orderedmap.OrderedMap[string, wireskema.Schema]) *orderedmap.OrderedMap[string, wireskema.Schema] {
	dst := orderedmap.New[string, wireskema.Schema]()
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, pair.Value)
	}
	return dst
}

type recordSchema struct {
	name   string
	fields *orderedmap.OrderedMap[string, wireskema.Schema]
	wire   wireskema.Codec
}

func (s *recordSchema) Name() string { return s.name }

func (s *recordSchema) Validate(v any) (any, error) {
	out, err := s.ValidateIgnoring(v, nil)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *recordSchema) ValidateIgnoring(v any, ignored []string) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeNotAnObject,
			Message: "expected object, got " + wireskema.RenderValue(v),
			Value:   v,
		}
	}
	skip := newStringSet(ignored)
	out := make(map[string]any, s.fields.Len())
	for pair := s.fields.Oldest(); pair != nil; pair = pair.Next() {
		if skip.has(pair.Key) {
			continue
		}
		// A missing key reads as nil, the canonical absent value.
		fv, err := pair.Value.Validate(src[pair.Key])
		if err != nil {
			return nil, err
		}
		out[pair.Key] = fv
	}
	return out, nil
}

func (s *recordSchema) HasField(name string) bool {
	_, ok := s.fields.Get(name)
	return ok
}

func (s *recordSchema) FieldNames() []string {
	names := make([]string, 0, s.fields.Len())
	for pair := s.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (s *recordSchema) ValidateField(name string, v any) (any, error) {
	fs, ok := s.fields.Get(name)
	if !ok {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeTypeMismatch,
			Message: fmt.Sprintf("no field %q", name),
			Value:   v,
		}
	}
	return fs.Validate(v)
}

func (s *recordSchema) Serialize(v any) ([]byte, error) {
	return wireskema.Encode(s, s.wire, v)
}

func (s *recordSchema) Deserialize(data []byte) (any, error) {
	return wireskema.Decode(s, s.wire, data)
}

func (s *recordSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, s.fields.Len())
	var required []string
	for pair := s.fields.Oldest(); pair != nil; pair = pair.Next() {
		ps, err := pair.Value.JSONSchema()
		if err != nil {
			return nil, err
		}
		props[pair.Key] = ps
		if !isOptional(pair.Value) {
			required = append(required, pair.Key)
		}
	}
	// Unknown keys are accepted then stripped at runtime, so the projection
	// marks additionalProperties true.
	return &js.Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: true}, nil
}
