package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-weft/weft/pkg/errors"
)

// LoadYAML parses a single widget definition from YAML and validates it.
//
// Example definition:
//
//	name: spinner
//	doc: A counter rendered inline.
//	mutable:
//	  - name: count
//	    default: 0
//	    redraw: true
//	render: "count: {{.count}}"
func LoadYAML(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, &errors.WeftError{
			Op:   "schema.LoadYAML",
			Kind: errors.KindSchema,
			Err:  fmt.Errorf("parse definition: %w", err),
		}
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadYAMLFile reads and parses a widget definition file.
func LoadYAMLFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.WeftError{
			Op:   "schema.LoadYAMLFile",
			Kind: errors.KindSchema,
			Err:  err,
		}
	}
	return LoadYAML(data)
}
