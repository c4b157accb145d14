// Package dsl provides the schema builders for wireskema.
//
// Overview
//   - Scalars: Bool()/Str()/Num()/Bytes() with optional literal sets that
//     narrow the schema to the enumerated values.
//   - Optional(inner): accepts the absent value (nil) in addition to
//     whatever inner accepts.
//   - Records: Record(name).Field(...).Build() declares an ordered field
//     table; validation prunes unknown fields and fails fast in
//     declaration order.
//   - Extension: Extend(name, base).Field(...).Build() layers fields over a
//     record-like base; own fields shadow identically named base fields.
//   - Unions: Union(name, discriminator).OneOf(...).Build() resolves by
//     probing branches in declaration order; first structural match wins.
//   - Lists: List(name, item) validates sequences element-wise.
//
// Entry points
//   - Record()/Extend(): chain Field, optionally WithCodec, then Build().
//   - Union(): chain OneOf and WithCodec, then Build()/MustBuild(); Build
//     fails when a branch lacks the discriminator field.
//   - Every built node implements wireskema.Schema; record-like nodes also
//     implement wireskema.FieldSchema.
//
// File layout (roles)
//   - scalar.go: Bool/Str/Num/Bytes nodes and literal-set checks.
//   - optional.go: the absent-accepting wrapper.
//   - record.go: ordered field table, pruning, ignore-set validation.
//   - extend.go: base+own composition with field shadowing.
//   - union.go: discriminator invariant and probe-based resolution.
//   - list.go: element-wise sequence validation.
//   - dsl.go: shared helpers (default codec, number canonicalization).
//
// Design guidelines
//   - Nodes are immutable after Build and safe for concurrent use.
//   - Validation is pure and fail-fast; one Issue is the whole story.
//   - Serialize/Deserialize bind to codec.Binary() unless WithCodec says
//     otherwise; use wireskema.Encode/Decode for one-off codecs.
package dsl
