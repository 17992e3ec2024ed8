package core

import (
	"github.com/go-weft/weft/pkg/document"
)

// Element is an abstract renderable unit with identity and visibility.
// Concrete elements embed Base and override the Perform hooks they need;
// the package-level Insert, Delete, and Redraw functions own the universal
// visibility bookkeeping around those hooks.
type Element interface {
	// ElementIDs returns the identities this element renders under. A
	// composite element may aggregate several.
	ElementIDs() []document.ID

	// PerformInsert runs the type-specific insertion logic.
	PerformInsert(cur *document.Cursor) error
	// PerformDelete runs the type-specific removal logic.
	PerformDelete(cur *document.Cursor) error
	// PerformRedraw runs the type-specific redraw logic.
	PerformRedraw(cur *document.Cursor) error

	base() *Base
}

// Base provides identity and visibility for concrete elements. Embed it in
// your element struct to satisfy Element:
//
//	type badge struct {
//	    core.Base
//	    label string
//	}
//
// Construct the embedded Base with NewBase so the element gets an identity.
type Base struct {
	id      document.ID
	visible bool
}

// NewBase creates a Base with a fresh identity.
func NewBase() Base {
	return Base{id: NewID()}
}

func (b *Base) base() *Base { return b }

// ID returns the element's identity. It is immutable for the element's
// lifetime.
func (b *Base) ID() document.ID {
	return b.id
}

// IsVisible reports whether the element is currently inserted. It is true
// only between a completed insert and the next delete.
func (b *Base) IsVisible() bool {
	return b.visible
}

// ElementIDs returns the element's own identity. Composite elements
// override this to aggregate the identities they render.
func (b *Base) ElementIDs() []document.ID {
	return []document.ID{b.id}
}

// PerformInsert is a no-op default. Override it with the type-specific
// insertion logic.
func (b *Base) PerformInsert(cur *document.Cursor) error { return nil }

// PerformDelete is a no-op default.
func (b *Base) PerformDelete(cur *document.Cursor) error { return nil }

// PerformRedraw is a no-op default.
func (b *Base) PerformRedraw(cur *document.Cursor) error { return nil }

// Insert marks the element visible and runs its insertion logic at the
// cursor. On failure the visibility flag is rolled back, preserving the
// invariant that visible elements always have a completed insert behind
// them.
func Insert(e Element, cur *document.Cursor) error {
	e.base().visible = true
	if err := e.PerformInsert(cur); err != nil {
		e.base().visible = false
		return err
	}
	return nil
}

// Delete marks the element invisible and runs its removal logic.
func Delete(e Element, cur *document.Cursor) error {
	e.base().visible = false
	return e.PerformDelete(cur)
}

// Redraw re-renders the element in place. It is a deliberate no-op when the
// element is not visible: a deleted element never redraws itself back into
// the document.
func Redraw(e Element, cur *document.Cursor) error {
	if !e.base().visible {
		return nil
	}
	return e.PerformRedraw(cur)
}

// PointAt reports whether the cursor currently sits inside a span rendered
// by this element.
func PointAt(e Element, cur *document.Cursor) bool {
	tag, ok := cur.TagHere()
	if !ok {
		return false
	}
	for _, id := range e.ElementIDs() {
		if id == tag {
			return true
		}
	}
	return false
}
