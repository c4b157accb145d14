// Package wireskema provides:
//
//   - A composable schema model for wire values: scalars, optionals, records,
//     record extensions, discriminated unions, and lists
//   - Recursive validation with literal-value refinement and record-field
//     pruning, exposed as Validate on every schema node
//   - Serialize/Deserialize on every node, delegating binary encode/decode of
//     already-validated plain values to a Codec
//   - A stable error model via Issue (schema name, code, offending value)
//
// Design policy:
//   - Keep only public APIs in the root package.
//   - Place the builder DSL under dsl/, codecs under codec/, and the JSON
//     Schema projection under jsonschema/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Record("User").
//		Field("id", dsl.Str("Id")).
//		Field("username", dsl.Str("Username")).
//		Build()
//
//	wire, err := user.Serialize(map[string]any{"id": "1", "username": "a"})
//	v, err := user.Deserialize(wire)
package wireskema
