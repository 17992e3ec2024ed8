package core

import (
	"fmt"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/schema"
)

// Registry holds compiled types by name and resolves parent references
// during compilation. Registration is all-or-nothing: a definition that
// fails to compile leaves no partial type behind.
type Registry struct {
	types map[string]*Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Register adds a compiled type. Duplicate names are an error.
func (r *Registry) Register(t *Type) error {
	if _, exists := r.types[t.name]; exists {
		return &errors.SchemaError{
			Definition: t.name,
			Reason:     "type already registered",
		}
	}
	r.types[t.name] = t
	return nil
}

// Lookup returns a registered type by name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Compile resolves the definition's parents against the registry, compiles
// it, and registers the result. The registry is untouched on any error.
func (r *Registry) Compile(def *schema.Definition, opts ...CompileOption) (*Type, error) {
	parents := make([]*Type, 0, len(def.Parents))
	for _, name := range def.Parents {
		parent, ok := r.Lookup(name)
		if !ok {
			return nil, &errors.SchemaError{
				Definition: def.Name,
				Reason:     fmt.Sprintf("unknown parent type %q", name),
			}
		}
		parents = append(parents, parent)
	}
	if len(parents) > 0 {
		opts = append([]CompileOption{WithParents(parents...)}, opts...)
	}

	t, err := Compile(def, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(t); err != nil {
		return nil, err
	}
	return t, nil
}
