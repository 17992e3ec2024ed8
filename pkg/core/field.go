package core

import "fmt"

// Field is a typed handle to one widget field. It is a thin wrapper over
// Widget.Get and Widget.Set, so setting through it carries the same
// reactive contract: a redraw-flagged field redraws on every Set.
//
//	count := core.FieldOf[int](w, "count")
//	count.Set(count.Value() + 1)
type Field[T any] struct {
	w    *Widget
	name string
}

// FieldOf wraps a widget field in a typed handle. The field's existence and
// value type are checked on access, not here.
func FieldOf[T any](w *Widget, name string) Field[T] {
	return Field[T]{w: w, name: name}
}

// Value returns the current field value. It panics on an unknown field name
// or a type mismatch; both are programmer errors, not runtime conditions.
func (f Field[T]) Value() T {
	v, err := f.w.Get(f.name)
	if err != nil {
		panic(err)
	}
	if v == nil {
		var zero T
		return zero
	}
	typed, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("field %s holds %T, not %T", f.name, v, typed))
	}
	return typed
}

// Set writes the field through the widget's accessor.
func (f Field[T]) Set(value T) error {
	return f.w.Set(f.name, value)
}
