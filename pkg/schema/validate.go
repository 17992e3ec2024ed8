package schema

import (
	"fmt"
	"go/token"

	"github.com/go-weft/weft/pkg/errors"
)

// knownTypes are the value types a field may declare explicitly.
var knownTypes = map[string]bool{
	"string":  true,
	"int":     true,
	"float64": true,
	"bool":    true,
	"any":     true,
}

// Validate checks the definition for structural errors. A definition that
// fails validation must never produce a type, partial or otherwise.
func (d *Definition) Validate() error {
	if !token.IsIdentifier(d.Name) {
		return &errors.SchemaError{
			Definition: d.Name,
			Reason:     "name is not a valid identifier",
		}
	}
	if d.Prefix != "" && !token.IsIdentifier(d.Prefix) {
		return &errors.SchemaError{
			Definition: d.Name,
			Reason:     fmt.Sprintf("prefix %q is not a valid identifier", d.Prefix),
		}
	}

	seen := make(map[string]FieldKind)
	for _, tf := range d.AllFields() {
		if !token.IsIdentifier(tf.Name) {
			return &errors.SchemaError{
				Definition: d.Name,
				Field:      tf.Name,
				Reason:     "field name is not a valid identifier",
			}
		}
		if prev, dup := seen[tf.Name]; dup {
			return &errors.SchemaError{
				Definition: d.Name,
				Field:      tf.Name,
				Reason:     fmt.Sprintf("duplicate field name (already declared %s)", prev),
			}
		}
		seen[tf.Name] = tf.Kind

		if tf.Type != "" && !knownTypes[tf.Type] {
			return &errors.SchemaError{
				Definition: d.Name,
				Field:      tf.Name,
				Reason:     fmt.Sprintf("unknown type %q", tf.Type),
			}
		}
		if err := checkDefault(tf.Field); err != nil {
			return &errors.SchemaError{
				Definition: d.Name,
				Field:      tf.Name,
				Reason:     err.Error(),
			}
		}
	}
	return nil
}

// checkDefault verifies that an explicit type and a default value agree.
func checkDefault(f Field) error {
	if f.Type == "" || f.Type == "any" || f.Default == nil {
		return nil
	}
	ok := false
	switch f.Type {
	case "string":
		_, ok = f.Default.(string)
	case "int":
		_, ok = f.Default.(int)
	case "float64":
		switch f.Default.(type) {
		case float64, int:
			ok = true
		}
	case "bool":
		_, ok = f.Default.(bool)
	}
	if !ok {
		return fmt.Errorf("default %v (%T) does not match declared type %s", f.Default, f.Default, f.Type)
	}
	return nil
}
