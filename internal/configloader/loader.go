// Package configloader holds the YAML/env plumbing behind the tester's
// configuration: file loading, typed environment overrides, and the
// config blocks it embeds. The node process carries its own config
// schema in internal/config.
package configloader

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML file into the given struct pointer.
func LoadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}
	return nil
}
