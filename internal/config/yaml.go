package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML implements koanf.Parser on top of yaml.v3.
type YAML struct{}

// YAMLParser returns a koanf parser for YAML config files.
func YAMLParser() *YAML {
	return &YAML{}
}

// Unmarshal parses YAML bytes into a nested map. An empty document yields an empty map.
func (p *YAML) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	return out, nil
}

// Marshal renders a nested map as YAML.
func (p *YAML) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
