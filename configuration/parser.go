package configuration

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// lowerKeys recursively lower cases all keys of the given config map, so that lookups are case-insensitive.
func lowerKeys(m map[string]any) map[string]any {
	for key, val := range m {
		switch nested := val.(type) {
		case map[string]any:
			val = lowerKeys(nested)
		case map[any]any:
			// yaml.v2 decodes nested maps with interface keys
			val = lowerKeys(cast.ToStringMap(nested))
		}

		delete(m, key)
		m[strings.ToLower(key)] = val
	}

	return m
}

// JSONLowerParser is a koanf.Parser for JSON files that lower cases all keys.
type JSONLowerParser struct {
	prefix string
	indent string
}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to JSON bytes.
func (p *JSONLowerParser) Marshal(o map[string]any) ([]byte, error) {
	return json.MarshalIndent(o, p.prefix, p.indent)
}

// YAMLLowerParser is a koanf.Parser for YAML files that lower cases all keys.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to YAML bytes.
func (p *YAMLLowerParser) Marshal(o map[string]any) ([]byte, error) {
	return yaml.Marshal(o)
}
