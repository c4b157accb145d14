package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wireskema "github.com/reoring/wireskema"
	"github.com/reoring/wireskema/dsl"
)

func TestOptionalAcceptsAbsent(t *testing.T) {
	s := dsl.Optional(dsl.Str("Email"))

	v, err := s.Validate(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = s.Validate("x@y.com")
	require.NoError(t, err)
	assert.Equal(t, "x@y.com", v)
}

func TestOptionalFailureNamesInnerSchema(t *testing.T) {
	s := dsl.Optional(dsl.Str("Email"))

	_, err := s.Validate(42)
	require.Error(t, err)
	it, ok := wireskema.AsIssue(err)
	require.True(t, ok)
	assert.Equal(t, "Email", it.Schema)
	assert.Equal(t, wireskema.CodeTypeMismatch, it.Code)
}

func TestOptionalAbsenceSymmetry(t *testing.T) {
	user := dsl.Record("User").
		Field("id", dsl.Str("Id")).
		Field("email", dsl.Optional(dsl.Str("Email"))).
		Build()

	missing, err := user.Validate(map[string]any{"id": "1"})
	require.NoError(t, err)
	explicit, err := user.Validate(map[string]any{"id": "1", "email": nil})
	require.NoError(t, err)

	assert.Equal(t, missing, explicit)

	// Both forms deserialize to the same canonical absent state.
	wa, err := user.Serialize(map[string]any{"id": "1"})
	require.NoError(t, err)
	wb, err := user.Serialize(map[string]any{"id": "1", "email": nil})
	require.NoError(t, err)

	va, err := user.Deserialize(wa)
	require.NoError(t, err)
	vb, err := user.Deserialize(wb)
	require.NoError(t, err)
	assert.Equal(t, va, vb)
}
