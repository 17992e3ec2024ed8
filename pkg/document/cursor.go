package document

import (
	"fmt"

	"github.com/go-weft/weft/pkg/errors"
)

// Cursor is an explicit read/write position into a Buffer. It replaces the
// ambient "current position" of a host editor: every widget operation that
// needs a position receives a Cursor instead of consulting global state.
type Cursor struct {
	buf Buffer
	pos int
}

// NewCursor creates a cursor at position 0.
func NewCursor(buf Buffer) *Cursor {
	return &Cursor{buf: buf}
}

// Buffer returns the underlying buffer.
func (c *Cursor) Buffer() Buffer {
	return c.buf
}

// Position returns the current position in runes.
func (c *Cursor) Position() int {
	return c.pos
}

// MoveTo sets the current position. Positions are clamped to [0, Len].
func (c *Cursor) MoveTo(pos int) {
	if pos < 0 {
		pos = 0
	}
	if max := c.buf.Len(); pos > max {
		pos = max
	}
	c.pos = pos
}

// InsertText inserts text at the current position, tagged with id, and
// advances the cursor past the inserted span.
func (c *Cursor) InsertText(text string, id ID) error {
	if err := c.buf.InsertAt(c.pos, text, id); err != nil {
		return &errors.WeftError{
			Op:   "document.Cursor.InsertText",
			Kind: errors.KindDocument,
			Err:  err,
		}
	}
	c.pos += runeLen(text)
	return nil
}

// DeleteForward removes the rune at the current position. The cursor does
// not move; the following content shifts into place.
func (c *Cursor) DeleteForward() error {
	if err := c.buf.DeleteAt(c.pos); err != nil {
		return &errors.WeftError{
			Op:   "document.Cursor.DeleteForward",
			Kind: errors.KindDocument,
			Err:  fmt.Errorf("delete at %d: %w", c.pos, err),
		}
	}
	return nil
}

// TagHere reports the identity tag at the current position.
func (c *Cursor) TagHere() (ID, bool) {
	return c.buf.TagAt(c.pos)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
