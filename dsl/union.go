package dsl

import (
	"fmt"
	"slices"

	wireskema "github.com/reoring/wireskema"
	js "github.com/reoring/wireskema/jsonschema"
)

// Union starts a union builder over record-like branches discriminated by
// the named field. Resolution is structural: branches are probed in
// declaration order and the first structural match wins, so declaration
// order is the tie-breaker when several branches would accept a value.
func Union(name, discriminator string) *UnionBuilder {
	return &UnionBuilder{name: name, discriminator: discriminator, wire: defaultCodec}
}

// UnionBuilder accumulates branches; Build enforces the discriminator
// invariant before any validation can run.
type UnionBuilder struct {
	name          string
	discriminator string
	branches      []wireskema.FieldSchema
	wire          wireskema.Codec
}

// OneOf appends branches in declaration order.
func (b *UnionBuilder) OneOf(branches ...wireskema.FieldSchema) *UnionBuilder {
	b.branches = append(b.branches, branches...)
	return b
}

// WithCodec rebinds Serialize/Deserialize to c.
func (b *UnionBuilder) WithCodec(c wireskema.Codec) *UnionBuilder {
	b.wire = c
	return b
}

// Build returns the union schema. It fails with CodeDiscriminatorMissing
// if any branch lacks the discriminator field; the invariant is checked
// here, never deferred to validation.
func (b *UnionBuilder) Build() (wireskema.FieldSchema, error) {
	for _, br := range b.branches {
		if !br.HasField(b.discriminator) {
			return nil, wireskema.Issue{
				Schema:  b.name,
				Code:    wireskema.CodeDiscriminatorMissing,
				Message: fmt.Sprintf("branch %q lacks discriminator field %q", br.Name(), b.discriminator),
			}
		}
	}
	return &unionSchema{
		name:          b.name,
		discriminator: b.discriminator,
		branches:      slices.Clone(b.branches),
		wire:          b.wire,
	}, nil
}

// MustBuild is Build that panics on error, for package-level schema vars.
func (b *UnionBuilder) MustBuild() wireskema.FieldSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type unionSchema struct {
	name          string
	discriminator string
	branches      []wireskema.FieldSchema
	wire          wireskema.Codec
}

func (s *unionSchema) Name() string { return s.name }

// resolve probes branches in declaration order. A probe validates the
// branch with every field except the discriminator ignored, so acceptance
// hinges on the discriminator (and object shape) alone; per-branch probe
// failures are discarded.
func (s *unionSchema) resolve(v any) (wireskema.FieldSchema, error) {
	for _, br := range s.branches {
		ignored := slices.DeleteFunc(br.FieldNames(), func(n string) bool {
			return n == s.discriminator
		})
		if _, err := br.ValidateIgnoring(v, ignored); err == nil {
			return br, nil
		}
	}
	return nil, wireskema.Issue{
		Schema:  s.name,
		Code:    wireskema.CodeNoMatchingBranch,
		Message: "no branch matched " + wireskema.RenderValue(v),
		Value:   v,
	}
}

func (s *unionSchema) Validate(v any) (any, error) {
	br, err := s.resolve(v)
	if err != nil {
		return nil, err
	}
	// Probe and materialization are the same pure operation; the selected
	// branch is re-validated in full and its failure, if any, propagates.
	return br.Validate(v)
}

func (s *unionSchema) ValidateIgnoring(v any, ignored []string) (map[string]any, error) {
	br, err := s.resolve(v)
	if err != nil {
		return nil, err
	}
	return br.ValidateIgnoring(v, ignored)
}

// HasField reports true only when every branch has the field.
func (s *unionSchema) HasField(name string) bool {
	if len(s.branches) == 0 {
		return false
	}
	for _, br := range s.branches {
		if !br.HasField(name) {
			return false
		}
	}
	return true
}

func (s *unionSchema) FieldNames() []string {
	var names []string
	for _, br := range s.branches {
		for _, n := range br.FieldNames() {
			if !slices.Contains(names, n) {
				names = append(names, n)
			}
		}
	}
	return names
}

// ValidateField delegates to the last declared branch that has the field.
// This exists only to support nesting unions inside extensions.
func (s *unionSchema) ValidateField(name string, v any) (any, error) {
	for i := len(s.branches) - 1; i >= 0; i-- {
		if s.branches[i].HasField(name) {
			return s.branches[i].ValidateField(name, v)
		}
	}
	return nil, wireskema.Issue{
		Schema:  s.name,
		Code:    wireskema.CodeTypeMismatch,
		Message: fmt.Sprintf("no field %q", name),
		Value:   v,
	}
}

func (s *unionSchema) Serialize(v any) ([]byte, error) {
	return wireskema.Encode(s, s.wire, v)
}

func (s *unionSchema) Deserialize(data []byte) (any, error) {
	return wireskema.Decode(s, s.wire, data)
}

func (s *unionSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(s.branches))}
	for _, br := range s.branches {
		bs, err := br.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.OneOf = append(out.OneOf, bs)
	}
	return out, nil
}
