package codec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/wireskema/codec"
)

func TestYAMLRoundTrip(t *testing.T) {
	c := codec.YAML()

	in := map[string]any{"k": "v", "n": 1.5, "ok": true}
	wire, err := c.Pack(in)
	require.NoError(t, err)
	out, err := c.Unpack(wire)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestYAMLIntegersDecodeAsFloat64(t *testing.T) {
	out, err := codec.YAML().Unpack([]byte("a: 2\nb: 2.5\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(2), "b": 2.5}, out)
}

func TestYAMLCarriesSpecialFloats(t *testing.T) {
	out, err := codec.YAML().Unpack([]byte("nan: .nan\ninf: .inf\n"))
	require.NoError(t, err)
	m := out.(map[string]any)
	assert.True(t, math.IsNaN(m["nan"].(float64)))
	assert.Equal(t, math.Inf(1), m["inf"])
}

func TestYAMLUnpackRejectsGarbage(t *testing.T) {
	_, err := codec.YAML().Unpack([]byte("a: [unclosed"))
	assert.Error(t, err)
}
