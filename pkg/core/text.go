package core

import (
	"github.com/go-weft/weft/pkg/document"
)

// Text is the degenerate static element: a bare string that satisfies the
// insertion contract trivially. Its content is inserted untagged, so it
// renders no identifiable span, cannot be deleted through the element
// lifecycle, and never redraws.
type Text struct {
	Base
	Content string
}

// NewText creates a static text element.
func NewText(content string) *Text {
	return &Text{Base: NewBase(), Content: content}
}

// ElementIDs returns nil: static text owns no tagged span.
func (t *Text) ElementIDs() []document.ID {
	return nil
}

// PerformInsert inserts the content as-is, untagged.
func (t *Text) PerformInsert(cur *document.Cursor) error {
	return cur.InsertText(t.Content, document.NoID)
}
