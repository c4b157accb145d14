package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wireskema "github.com/reoring/wireskema"
	"github.com/reoring/wireskema/dsl"
)

func TestListRejectsNonSequence(t *testing.T) {
	s := dsl.List("Tags", dsl.Str("Tag"))

	for _, v := range []any{"x", 42, map[string]any{}, nil} {
		_, err := s.Validate(v)
		require.Error(t, err)
		it, ok := wireskema.AsIssue(err)
		require.True(t, ok)
		assert.Equal(t, wireskema.CodeNotAnArray, it.Code)
		assert.Equal(t, "Tags", it.Schema)
	}
}

func TestListValidatesElementsInOrder(t *testing.T) {
	s := dsl.List("Tags", dsl.Str("Tag"))

	v, err := s.Validate([]any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, v)

	_, err = s.Validate([]any{"a", 2, 3})
	require.Error(t, err)
	it, _ := wireskema.AsIssue(err)
	assert.Equal(t, wireskema.CodeTypeMismatch, it.Code)
	assert.Contains(t, it.Message, "element 1")
}

func TestListDoesNotAliasInput(t *testing.T) {
	in := []any{"a", "b"}
	v, err := dsl.List("Tags", dsl.Str("Tag")).Validate(in)
	require.NoError(t, err)

	out := v.([]any)
	out[0] = "mutated"
	assert.Equal(t, "a", in[0])
}

func TestListOfRecordsPrunesElements(t *testing.T) {
	item := dsl.Record("Item").
		Field("id", dsl.Str("Id")).
		Build()
	s := dsl.List("Items", item)

	v, err := s.Validate([]any{
		map[string]any{"id": "1", "junk": true},
		map[string]any{"id": "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"id": "1"},
		map[string]any{"id": "2"},
	}, v)
}

func TestEmptyList(t *testing.T) {
	v, err := dsl.List("Tags", dsl.Str("Tag")).Validate([]any{})
	require.NoError(t, err)
	assert.Equal(t, []any{}, v)
}
