package core

import (
	stderrors "errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-weft/weft/pkg/document"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/schema"
)

// Accessor misuse errors. They wrap into the error chain so callers can
// test with errors.Is.
var (
	// ErrUnknownField is returned for a field name the type never declared.
	ErrUnknownField = stderrors.New("unknown field")
	// ErrReadOnly is returned when setting a shared or immutable field
	// through an instance.
	ErrReadOnly = stderrors.New("field is read-only")
	// ErrTypeMismatch is returned when a value does not fit the field type.
	ErrTypeMismatch = stderrors.New("value type mismatch")
)

// Widget is a positioned, observable, redrawable element. Instances are
// created by Type.New; their field semantics come from the compiled
// definition.
//
// A widget remembers the cursor it was last inserted with. Mutating a
// redraw-flagged field through Set synchronously redraws the widget there,
// with no caller-side bookkeeping. The redraw runs inside the Set call, so
// one external mutation can produce a nested delete-then-insert in the same
// call stack.
type Widget struct {
	Base
	Notifier

	typ    *Type
	values map[string]any

	// position is the document offset of the rendered span. Valid only
	// while the widget is visible; recomputed on every insert.
	position int
	// lastRenderLen bounds the delete scan: a widget never removes more
	// runes than its last render produced, even under inconsistent tags.
	lastRenderLen int
	cur           *document.Cursor
}

// Type returns the compiled type this widget was constructed from.
func (w *Widget) Type() *Type {
	return w.typ
}

// Position returns the document offset recorded at the last insert. It is
// meaningful only while the widget is visible.
func (w *Widget) Position() int {
	return w.position
}

// Get returns the current value of a field. Shared fields read through to
// the single type-level value.
func (w *Widget) Get(name string) (any, error) {
	spec, ok := w.typ.fields[name]
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", w.typ.name, name, ErrUnknownField)
	}
	if spec.kind == schema.KindShared {
		return w.typ.shared[name], nil
	}
	return w.values[name], nil
}

// Set writes a mutable or state field. Shared and immutable fields are
// read-only through instances; shared values change via Type.SetShared and
// immutable values only via construction initargs.
//
// Every successful write notifies the widget's listeners. A write to a
// redraw-flagged field additionally triggers exactly one synchronous redraw
// (a no-op while the widget is not inserted).
func (w *Widget) Set(name string, value any) error {
	spec, ok := w.typ.fields[name]
	if !ok {
		return fmt.Errorf("%s.%s: %w", w.typ.name, name, ErrUnknownField)
	}
	switch spec.kind {
	case schema.KindShared:
		return fmt.Errorf("%s.%s is shared: %w (use Type.SetShared)", w.typ.name, name, ErrReadOnly)
	case schema.KindImmutable:
		return fmt.Errorf("%s.%s is immutable: %w", w.typ.name, name, ErrReadOnly)
	}
	if err := spec.check(value); err != nil {
		return err
	}
	w.values[name] = value
	w.NotifyListeners()
	if spec.redraw && w.cur != nil {
		return Redraw(w, w.cur)
	}
	return nil
}

// PerformInsert records the cursor position, renders the widget, and places
// the rendered text there tagged with the widget's identity. The edit is a
// presentation-layer effect; it is never a user-visible modification.
func (w *Widget) PerformInsert(cur *document.Cursor) error {
	w.position = cur.Position()
	text, err := w.renderText()
	if err != nil {
		return err
	}
	if err := cur.InsertText(text, w.ID()); err != nil {
		return err
	}
	w.lastRenderLen = utf8.RuneCountInString(text)
	w.cur = cur
	return nil
}

// PerformDelete removes the rendered span by scanning forward from the
// recorded position, deleting one rune at a time while the position still
// carries this widget's identity. The scan is bounded by the length of the
// last render, so inconsistent tagging from overlapping widgets cannot make
// it remove unrelated content.
func (w *Widget) PerformDelete(cur *document.Cursor) error {
	cur.MoveTo(w.position)
	for i := 0; i < w.lastRenderLen; i++ {
		tag, ok := cur.TagHere()
		if !ok || tag != w.ID() {
			break
		}
		if err := cur.DeleteForward(); err != nil {
			return err
		}
	}
	return nil
}

// PerformRedraw deletes the existing rendered span and reinserts at the
// same slot. Redraw is delete-then-insert, not an in-place patch: its cost
// is proportional to render size, and external markers anchored inside the
// old span do not survive it.
func (w *Widget) PerformRedraw(cur *document.Cursor) error {
	if err := w.PerformDelete(cur); err != nil {
		return err
	}
	cur.MoveTo(w.position)
	return w.PerformInsert(cur)
}

// renderText runs the type's render with panic recovery. A panicking render
// is reported through the global error handler and surfaces as a
// RenderError before any buffer mutation happens.
func (w *Widget) renderText() (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr := &errors.RenderError{
				Widget:     w.typ.name,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportRenderError(rerr)
			err = rerr
		}
	}()

	text, err = w.typ.renderText(w)
	if err != nil {
		rerr := &errors.RenderError{
			Widget:    w.typ.name,
			Err:       err,
			Timestamp: time.Now(),
		}
		errors.ReportRenderError(rerr)
		return "", rerr
	}
	return text, nil
}

// snapshot returns the widget's field values for template rendering:
// per-instance values overlaid on the type's shared values.
func (w *Widget) snapshot() map[string]any {
	data := make(map[string]any, len(w.values)+len(w.typ.shared))
	for name, v := range w.typ.shared {
		data[name] = v
	}
	for name, v := range w.values {
		data[name] = v
	}
	return data
}
