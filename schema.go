package wireskema

import (
	js "github.com/reoring/wireskema/jsonschema"
)

// Schema is the capability set every schema node implements. Nodes are
// immutable once constructed and safe for concurrent use; Validate is pure
// and is the single source of truth for both Serialize and Deserialize.
type Schema interface {
	// Name returns the schema's declared name, used in Issue reporting.
	Name() string

	// Validate checks v against the schema and returns the sanitized value:
	// scalars unchanged, records freshly built with unknown fields pruned,
	// lists freshly built. The first failure aborts validation.
	Validate(v any) (any, error)

	// Serialize validates v and packs the sanitized value with the node's
	// codec. It fails with whatever Validate fails with.
	Serialize(v any) ([]byte, error)

	// Deserialize unpacks data with the node's codec and validates the
	// result. Codec decode failures surface as CodeDecodeError issues.
	Deserialize(data []byte) (any, error)

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// FieldSchema is the record-like capability set: records, extensions and
// unions. ValidateIgnoring and ValidateField exist to support composition
// (extension shadowing, union probing); they are narrow affordances, not a
// general validation entry point.
type FieldSchema interface {
	Schema

	// HasField reports whether name is a field of this schema. Unions
	// report true only when every branch has the field.
	HasField(name string) bool

	// FieldNames returns the field names in declaration order.
	FieldNames() []string

	// ValidateField validates v against the single named field's schema.
	ValidateField(name string, v any) (any, error)

	// ValidateIgnoring behaves like Validate but skips the named fields
	// entirely: they are neither checked nor present in the result.
	ValidateIgnoring(v any, ignored []string) (map[string]any, error)
}

// Codec performs lossless binary encode/decode of already-validated plain
// values: booleans, strings, IEEE-754 float64 (including NaN and ±Inf),
// byte sequences, string-keyed mappings, sequences, and nil. Map key order
// on the wire is not significant; field semantics are name-indexed.
type Codec interface {
	Pack(v any) ([]byte, error)
	Unpack(data []byte) (any, error)
}

// Encode validates v against s, then packs the sanitized value with c.
// It exists for one-off use with a non-default codec; Schema.Serialize is
// the common path.
func Encode(s Schema, c Codec, v any) ([]byte, error) {
	out, err := s.Validate(v)
	if err != nil {
		return nil, err
	}
	return c.Pack(out)
}

// Decode unpacks data with c, then validates the result against s. Codec
// failures are surfaced as CodeDecodeError, validation failures as-is.
func Decode(s Schema, c Codec, data []byte) (any, error) {
	v, err := c.Unpack(data)
	if err != nil {
		return nil, Issue{Schema: s.Name(), Code: CodeDecodeError, Message: err.Error(), Cause: err}
	}
	return s.Validate(v)
}

// Is reports whether v conforms to s.
func Is(s Schema, v any) bool {
	_, err := s.Validate(v)
	return err == nil
}
