package dsl

import (
	"fmt"
	"math"
	"slices"

	wireskema "github.com/reoring/wireskema"
	js "github.com/reoring/wireskema/jsonschema"
)

// Bool returns a boolean schema. Literals, when given, narrow the schema to
// exactly those values.
func Bool(name string, literals ...bool) wireskema.Schema {
	return &boolSchema{name: name, literals: slices.Clone(literals)}
}

// Str returns a string schema. Literals, when given, narrow the schema to
// exactly those values.
func Str(name string, literals ...string) wireskema.Schema {
	return &strSchema{name: name, literals: slices.Clone(literals)}
}

// Num returns a number schema over IEEE-754 float64. Go integer kinds are
// accepted and canonicalized to float64 before any literal check. A NaN
// literal matches NaN values by identity (math.IsNaN), since ordinary
// equality would make the literal unmatchable.
func Num(name string, literals ...float64) wireskema.Schema {
	return &numSchema{name: name, literals: slices.Clone(literals)}
}

// Bytes returns a byte-sequence schema. No length or content constraint is
// applied.
func Bytes(name string) wireskema.Schema {
	return &bytesSchema{name: name}
}

type boolSchema struct {
	name     string
	literals []bool
}

func (s *boolSchema) Name() string { return s.name }

func (s *boolSchema) Validate(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeTypeMismatch,
			Message: "expected boolean, got " + wireskema.RenderValue(v),
			Value:   v,
		}
	}
	if len(s.literals) > 0 && !slices.Contains(s.literals, b) {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeLiteralMismatch,
			Message: fmt.Sprintf("%v is not an allowed literal", b),
			Value:   b,
		}
	}
	return b, nil
}

func (s *boolSchema) Serialize(v any) ([]byte, error) {
	return wireskema.Encode(s, defaultCodec, v)
}

func (s *boolSchema) Deserialize(data []byte) (any, error) {
	return wireskema.Decode(s, defaultCodec, data)
}

func (s *boolSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "boolean", Enum: enumOf(s.literals)}, nil
}

type strSchema struct {
	name     string
	literals []string
}

func (s *strSchema) Name() string { return s.name }

func (s *strSchema) Validate(v any) (any, error) {
	str, ok := v.(string)
	if !ok {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeTypeMismatch,
			Message: "expected string, got " + wireskema.RenderValue(v),
			Value:   v,
		}
	}
	if len(s.literals) > 0 && !slices.Contains(s.literals, str) {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeLiteralMismatch,
			Message: fmt.Sprintf("%q is not an allowed literal", str),
			Value:   str,
		}
	}
	return str, nil
}

func (s *strSchema) Serialize(v any) ([]byte, error) {
	return wireskema.Encode(s, defaultCodec, v)
}

func (s *strSchema) Deserialize(data []byte) (any, error) {
	return wireskema.Decode(s, defaultCodec, data)
}

func (s *strSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Enum: enumOf(s.literals)}, nil
}

type numSchema struct {
	name     string
	literals []float64
}

func (s *numSchema) Name() string { return s.name }

func (s *numSchema) Validate(v any) (any, error) {
	f, ok := asNumber(v)
	if !ok {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeTypeMismatch,
			Message: "expected number, got " + wireskema.RenderValue(v),
			Value:   v,
		}
	}
	if len(s.literals) > 0 && !s.matches(f) {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeLiteralMismatch,
			Message: fmt.Sprintf("%v is not an allowed literal", f),
			Value:   f,
		}
	}
	return f, nil
}

func (s *numSchema) matches(f float64) bool {
	for _, lit := range s.literals {
		if math.IsNaN(lit) && math.IsNaN(f) {
			return true
		}
		if lit == f {
			return true
		}
	}
	return false
}

func (s *numSchema) Serialize(v any) ([]byte, error) {
	return wireskema.Encode(s, defaultCodec, v)
}

func (s *numSchema) Deserialize(data []byte) (any, error) {
	return wireskema.Decode(s, defaultCodec, data)
}

func (s *numSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "number", Enum: enumOf(s.literals)}, nil
}

type bytesSchema struct {
	name string
}

func (s *bytesSchema) Name() string { return s.name }

func (s *bytesSchema) Validate(v any) (any, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, wireskema.Issue{
			Schema:  s.name,
			Code:    wireskema.CodeTypeMismatch,
			Message: "expected byte sequence, got " + wireskema.RenderValue(v),
			Value:   v,
		}
	}
	return b, nil
}

func (s *bytesSchema) Serialize(v any) ([]byte, error) {
	return wireskema.Encode(s, defaultCodec, v)
}

func (s *bytesSchema) Deserialize(data []byte) (any, error) {
	return wireskema.Decode(s, defaultCodec, data)
}

func (s *bytesSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "byte"}, nil
}
