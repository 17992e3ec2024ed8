package core

import (
	"fmt"
	"reflect"
	"strings"
	"text/template"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/schema"
)

// RenderFunc renders a widget to the text that represents it in the
// document.
type RenderFunc func(w *Widget) (string, error)

// InitFunc is a post-construction hook, run after all initargs and defaults
// are applied.
type InitFunc func(w *Widget)

// Type is a compiled widget type: the runtime product of a Definition. A
// Type is created once, at compile time, and is immutable apart from the
// values of its shared fields.
type Type struct {
	name   string
	prefix string
	doc    string

	fields map[string]*fieldSpec
	order  []string

	// shared holds the single class-level copy of every shared field.
	shared map[string]any

	render RenderFunc
	tmpl   *template.Template
	init   InitFunc
}

type fieldSpec struct {
	name   string
	kind   schema.FieldKind
	typ    reflect.Type // nil means any
	def    any
	redraw bool
	doc    string
}

// check verifies a value against the field's declared or inferred type.
func (s *fieldSpec) check(value any) error {
	if s.typ == nil || value == nil {
		return nil
	}
	vt := reflect.TypeOf(value)
	if vt == s.typ || vt.AssignableTo(s.typ) {
		return nil
	}
	// YAML and literal ints are accepted for float64 fields.
	if s.typ.Kind() == reflect.Float64 && vt.Kind() == reflect.Int {
		return nil
	}
	return fmt.Errorf("field %s wants %s, got %s: %w", s.name, s.typ, vt, ErrTypeMismatch)
}

// CompileOption adjusts compilation.
type CompileOption func(*compileConfig)

type compileConfig struct {
	render  RenderFunc
	init    InitFunc
	parents []*Type
}

// WithRender supplies a render function, overriding the definition's render
// template.
func WithRender(fn RenderFunc) CompileOption {
	return func(c *compileConfig) { c.render = fn }
}

// WithInit supplies a post-construction initializer.
func WithInit(fn InitFunc) CompileOption {
	return func(c *compileConfig) { c.init = fn }
}

// WithParents merges the fields of previously compiled types into the new
// one. A field redeclared by the child overrides the parent's entry.
func WithParents(parents ...*Type) CompileOption {
	return func(c *compileConfig) { c.parents = append(c.parents, parents...) }
}

// Compile expands a declarative definition into a widget Type. It validates
// the definition first; on any error no type is produced.
func Compile(def *schema.Definition, opts ...CompileOption) (*Type, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	var cfg compileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Type{
		name:   def.Name,
		prefix: def.AccessorPrefix(),
		doc:    def.Doc,
		fields: make(map[string]*fieldSpec),
		shared: make(map[string]any),
		init:   cfg.init,
	}

	for _, parent := range cfg.parents {
		for _, name := range parent.order {
			spec := parent.fields[name]
			t.addField(*spec)
		}
		if t.render == nil && t.tmpl == nil {
			t.render = parent.render
			t.tmpl = parent.tmpl
		}
		if t.init == nil {
			t.init = parent.init
		}
	}

	for _, tf := range def.AllFields() {
		spec, err := newFieldSpec(def.Name, tf)
		if err != nil {
			return nil, err
		}
		t.addField(*spec)
	}

	for _, name := range t.order {
		spec := t.fields[name]
		if spec.kind == schema.KindShared {
			t.shared[name] = spec.def
		}
	}

	if cfg.render != nil {
		t.render = cfg.render
		t.tmpl = nil
	} else if def.Render != "" {
		tmpl, err := template.New(def.Name).Parse(def.Render)
		if err != nil {
			return nil, &errors.WeftError{
				Op:   "core.Compile",
				Kind: errors.KindCompile,
				Err:  fmt.Errorf("definition %q: parse render template: %w", def.Name, err),
			}
		}
		t.render = nil
		t.tmpl = tmpl
	}
	if t.render == nil && t.tmpl == nil {
		return nil, &errors.SchemaError{
			Definition: def.Name,
			Reason:     "definition has no render body",
		}
	}

	return t, nil
}

// newFieldSpec resolves a field's type, explicitly or inferred from its
// default value's runtime type.
func newFieldSpec(defName string, tf schema.TaggedField) (*fieldSpec, error) {
	spec := &fieldSpec{
		name: tf.Name,
		kind: tf.Kind,
		def:  tf.Default,
		doc:  tf.Doc,
	}
	// The redraw flag is only honored on the mutable and state lists;
	// shared and immutable fields are non-reactive by construction.
	if tf.Kind == schema.KindMutable || tf.Kind == schema.KindState {
		spec.redraw = tf.Redraw
	}

	switch tf.Type {
	case "":
		if tf.Default != nil {
			spec.typ = reflect.TypeOf(tf.Default)
		}
	case "any":
		spec.typ = nil
	case "string":
		spec.typ = reflect.TypeOf("")
	case "int":
		spec.typ = reflect.TypeOf(0)
	case "float64":
		spec.typ = reflect.TypeOf(0.0)
	case "bool":
		spec.typ = reflect.TypeOf(false)
	default:
		// Validate catches this; kept as a backstop.
		return nil, &errors.SchemaError{
			Definition: defName,
			Field:      tf.Name,
			Reason:     fmt.Sprintf("unknown type %q", tf.Type),
		}
	}
	return spec, nil
}

func (t *Type) addField(spec fieldSpec) {
	if _, exists := t.fields[spec.name]; !exists {
		t.order = append(t.order, spec.name)
	}
	t.fields[spec.name] = &spec
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Doc returns the type's documentation string.
func (t *Type) Doc() string { return t.doc }

// Prefix returns the accessor prefix used by generated code.
func (t *Type) Prefix() string { return t.prefix }

// FieldNames returns the field names in declaration order, parents first.
func (t *Type) FieldNames() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// FieldKind reports the kind of a declared field.
func (t *Type) FieldKind(name string) (schema.FieldKind, bool) {
	spec, ok := t.fields[name]
	if !ok {
		return 0, false
	}
	return spec.kind, true
}

// Shared returns the class-level value of a shared field.
func (t *Type) Shared(name string) (any, error) {
	spec, ok := t.fields[name]
	if !ok || spec.kind != schema.KindShared {
		return nil, fmt.Errorf("%s.%s: %w", t.name, name, ErrUnknownField)
	}
	return t.shared[name], nil
}

// SetShared replaces the class-level value of a shared field. The change is
// visible through the accessor of every instance; there is only one
// underlying value.
func (t *Type) SetShared(name string, value any) error {
	spec, ok := t.fields[name]
	if !ok || spec.kind != schema.KindShared {
		return fmt.Errorf("%s.%s: %w", t.name, name, ErrUnknownField)
	}
	if err := spec.check(value); err != nil {
		return err
	}
	t.shared[name] = value
	return nil
}

// New constructs a widget instance. Initargs may name any per-instance
// field, immutable ones included; this is the only point at which immutable
// fields are settable. Defaults fill whatever the initargs leave out, then
// the initializer (if any) runs.
func (t *Type) New(initargs map[string]any) (*Widget, error) {
	w := &Widget{
		Base:     NewBase(),
		typ:      t,
		values:   make(map[string]any),
		position: -1,
	}

	for _, name := range t.order {
		spec := t.fields[name]
		if spec.kind == schema.KindShared {
			continue
		}
		w.values[name] = spec.def
	}

	for name, value := range initargs {
		spec, ok := t.fields[name]
		if !ok {
			return nil, fmt.Errorf("%s.%s: %w", t.name, name, ErrUnknownField)
		}
		if spec.kind == schema.KindShared {
			return nil, fmt.Errorf("%s.%s is shared: %w (use Type.SetShared)", t.name, name, ErrReadOnly)
		}
		if err := spec.check(value); err != nil {
			return nil, err
		}
		w.values[name] = value
	}

	if t.init != nil {
		t.init(w)
	}
	return w, nil
}

// renderText runs the type's render body against a widget.
func (t *Type) renderText(w *Widget) (string, error) {
	if t.render != nil {
		return t.render(w)
	}
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, w.snapshot()); err != nil {
		return "", err
	}
	return sb.String(), nil
}
