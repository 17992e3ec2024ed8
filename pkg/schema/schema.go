// Package schema defines the declarative widget definitions consumed by the
// core compiler and the weftgen code generator.
//
// A Definition describes one widget type: its name, accessor prefix, parent
// definitions, and four field lists with distinct semantics:
//
//   - shared: one value per generated type, read-only through instances
//   - immutable: per-instance, settable only at construction
//   - mutable: per-instance, read/write, conceptually affects rendering
//   - state: per-instance, read/write, non-renderable bookkeeping
//
// Mutable and state fields may carry a redraw flag. Declaring redraw on a
// field is sufficient to make every external mutation of it re-render the
// owning widget; callers never schedule redraws by hand.
package schema

// FieldKind identifies one of the four field semantics.
type FieldKind int

const (
	// KindShared is a class-level field: a single value shared by every
	// instance of the generated type.
	KindShared FieldKind = iota
	// KindImmutable is a per-instance field settable only at construction.
	KindImmutable
	// KindMutable is a per-instance read/write field that conceptually
	// affects rendering.
	KindMutable
	// KindState is a per-instance read/write bookkeeping field. It compiles
	// identically to KindMutable; the distinction is documentation intent.
	KindState
)

func (k FieldKind) String() string {
	switch k {
	case KindShared:
		return "shared"
	case KindImmutable:
		return "immutable"
	case KindMutable:
		return "mutable"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// Field is one entry in a field list.
type Field struct {
	// Name is the field name. Accessors are derived as <prefix><name>.
	Name string `yaml:"name"`
	// Type is the value type: string, int, float64, bool, or any.
	// When empty, the type is inferred from Default.
	Type string `yaml:"type,omitempty"`
	// Default is the initial value used when construction supplies none.
	Default any `yaml:"default,omitempty"`
	// Doc documents the field.
	Doc string `yaml:"doc,omitempty"`
	// Redraw makes every mutation of this field trigger a redraw of the
	// owning widget. Only honored on mutable and state fields.
	Redraw bool `yaml:"redraw,omitempty"`
}

// Definition is a declarative widget type definition.
type Definition struct {
	// Name is the widget type name. Must be a valid identifier.
	Name string `yaml:"name"`
	// Prefix is prepended to generated accessor names. Defaults to the
	// type name when empty.
	Prefix string `yaml:"prefix,omitempty"`
	// Parents names previously compiled definitions whose fields are
	// merged into this one.
	Parents []string `yaml:"parents,omitempty"`
	// Doc documents the widget type.
	Doc string `yaml:"doc,omitempty"`

	Shared    []Field `yaml:"shared,omitempty"`
	Immutable []Field `yaml:"immutable,omitempty"`
	Mutable   []Field `yaml:"mutable,omitempty"`
	State     []Field `yaml:"state,omitempty"`

	// Render is the render body as a text/template over the widget's
	// fields, e.g. "count: {{.count}}". Programmatic callers may instead
	// supply a render function at compile time.
	Render string `yaml:"render,omitempty"`
}

// TaggedField pairs a field with its kind.
type TaggedField struct {
	Field
	Kind FieldKind
}

// AllFields returns every field with its kind, in declaration order:
// shared, immutable, mutable, state.
func (d *Definition) AllFields() []TaggedField {
	out := make([]TaggedField, 0, len(d.Shared)+len(d.Immutable)+len(d.Mutable)+len(d.State))
	for _, f := range d.Shared {
		out = append(out, TaggedField{f, KindShared})
	}
	for _, f := range d.Immutable {
		out = append(out, TaggedField{f, KindImmutable})
	}
	for _, f := range d.Mutable {
		out = append(out, TaggedField{f, KindMutable})
	}
	for _, f := range d.State {
		out = append(out, TaggedField{f, KindState})
	}
	return out
}

// AccessorPrefix returns the effective accessor prefix.
func (d *Definition) AccessorPrefix() string {
	if d.Prefix != "" {
		return d.Prefix
	}
	return d.Name
}
