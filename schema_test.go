package wireskema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wireskema "github.com/reoring/wireskema"
	"github.com/reoring/wireskema/codec"
	"github.com/reoring/wireskema/dsl"
)

func TestIs(t *testing.T) {
	s := dsl.Str("Kind", "a", "b")
	assert.True(t, wireskema.Is(s, "a"))
	assert.False(t, wireskema.Is(s, "c"))
	assert.False(t, wireskema.Is(s, 1))
}

func TestEncodeValidatesBeforePacking(t *testing.T) {
	s := dsl.Str("Kind", "a")

	_, err := wireskema.Encode(s, codec.Binary(), "nope")
	require.Error(t, err)
	it, ok := wireskema.AsIssue(err)
	require.True(t, ok)
	assert.Equal(t, wireskema.CodeLiteralMismatch, it.Code)
}

func TestDecodeWrapsCodecFailure(t *testing.T) {
	s := dsl.Str("Kind")

	_, err := wireskema.Decode(s, codec.JSON(), []byte("{"))
	require.Error(t, err)
	it, ok := wireskema.AsIssue(err)
	require.True(t, ok)
	assert.Equal(t, wireskema.CodeDecodeError, it.Code)
	assert.Equal(t, "Kind", it.Schema)
}
