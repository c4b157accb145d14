package codec

import (
	"gopkg.in/yaml.v3"

	wireskema "github.com/reoring/wireskema"
)

// YAML returns a codec over YAML text. NaN and ±Inf round-trip (.nan,
// .inf), but byte sequences decode back as strings (!!binary resolves to a
// string value), so Bytes schemas do not survive a YAML round-trip. Use
// Binary for anything that must round-trip.
func YAML() wireskema.Codec { return yamlCodec{} }

type yamlCodec struct{}

func (yamlCodec) Pack(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Unpack(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v)
}
