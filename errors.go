package wireskema

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch         = "type_mismatch"
	CodeLiteralMismatch      = "literal_mismatch"
	CodeNotAnObject          = "not_an_object"
	CodeNotAnArray           = "not_an_array"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeNoMatchingBranch     = "no_matching_branch"
	CodeDecodeError          = "decode_error"
)

// Issue is the single structured validation failure. Validation is
// fail-fast: the first failure found (in field-declaration order, then in
// union branch-declaration order) aborts the enclosing operation, so one
// Issue is always the whole story.
type Issue struct {
	Schema  string // Name of the schema node that rejected the value.
	Code    string // One of the codes listed above.
	Message string // Expected-type/constraint description.
	Value   any    // The offending value.
	Cause   error  // Optional: underlying error (codec decode failures).
}

// Error renders e.g. `type_mismatch at "Username": expected string, got 42`.
func (it Issue) Error() string {
	if it.Message == "" {
		return fmt.Sprintf("%s at %q", it.Code, it.Schema)
	}
	return fmt.Sprintf("%s at %q: %s", it.Code, it.Schema, it.Message)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As chains.
func (it Issue) Unwrap() error { return it.Cause }

// AsIssue extracts an Issue from an error using errors.As internally.
func AsIssue(err error) (Issue, bool) {
	if err == nil {
		return Issue{}, false
	}
	var it Issue
	if errors.As(err, &it) {
		return it, true
	}
	return Issue{}, false
}

// RenderValue produces a compact single-line rendering of an offending
// value for inclusion in Issue messages. Values the JSON encoder cannot
// carry (NaN, raw bytes) fall back to %v formatting.
func RenderValue(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	const max = 120
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
