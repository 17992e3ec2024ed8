package document

import "fmt"

// MemBuffer is the in-memory reference implementation of Buffer. It backs
// the core tests and the wefttest harness.
//
// Widget insertions are presentation-layer edits: they bump Revision but
// never mark the buffer as user-modified. UserInsert is the user-edit path
// and does set the modified flag.
//
// MemBuffer is not safe for concurrent use; the toolkit shares the host
// document's single-writer model.
type MemBuffer struct {
	runes    []rune
	tags     []ID
	revision int
	modified bool
}

// NewMemBuffer creates an empty buffer.
func NewMemBuffer() *MemBuffer {
	return &MemBuffer{}
}

// InsertAt implements Buffer. The edit is a presentation-layer effect and
// does not mark the buffer as modified.
func (b *MemBuffer) InsertAt(pos int, text string, id ID) error {
	if pos < 0 || pos > len(b.runes) {
		return fmt.Errorf("insert position %d out of range [0,%d]", pos, len(b.runes))
	}
	inserted := []rune(text)
	b.runes = splice(b.runes, pos, inserted)
	tagRun := make([]ID, len(inserted))
	for i := range tagRun {
		tagRun[i] = id
	}
	b.tags = splice(b.tags, pos, tagRun)
	b.revision++
	return nil
}

// DeleteAt implements Buffer.
func (b *MemBuffer) DeleteAt(pos int) error {
	if pos < 0 || pos >= len(b.runes) {
		return fmt.Errorf("delete position %d out of range [0,%d)", pos, len(b.runes))
	}
	b.runes = append(b.runes[:pos], b.runes[pos+1:]...)
	b.tags = append(b.tags[:pos], b.tags[pos+1:]...)
	b.revision++
	return nil
}

// TagAt implements Buffer.
func (b *MemBuffer) TagAt(pos int) (ID, bool) {
	if pos < 0 || pos >= len(b.tags) {
		return NoID, false
	}
	if b.tags[pos] == NoID {
		return NoID, false
	}
	return b.tags[pos], true
}

// Len implements Buffer.
func (b *MemBuffer) Len() int {
	return len(b.runes)
}

// UserInsert inserts untagged text as a user edit, marking the buffer
// modified. Tests use it to simulate foreign edits around rendered spans.
func (b *MemBuffer) UserInsert(pos int, text string) error {
	if err := b.InsertAt(pos, text, NoID); err != nil {
		return err
	}
	b.modified = true
	return nil
}

// Text returns the buffer content as a string.
func (b *MemBuffer) Text() string {
	return string(b.runes)
}

// Revision returns the number of edits applied, presentation edits included.
func (b *MemBuffer) Revision() int {
	return b.revision
}

// Modified reports whether the buffer has seen a user edit. Presentation
// edits made by widgets never flip this flag.
func (b *MemBuffer) Modified() bool {
	return b.modified
}

// Span returns the start and rune length of the contiguous span tagged with
// id, or (-1, 0) when no such span exists.
func (b *MemBuffer) Span(id ID) (start, length int) {
	start = -1
	for i, tag := range b.tags {
		if tag == id {
			if start == -1 {
				start = i
			}
			length++
		} else if start != -1 {
			break
		}
	}
	return start, length
}

func splice[T any](s []T, pos int, ins []T) []T {
	out := make([]T, 0, len(s)+len(ins))
	out = append(out, s[:pos]...)
	out = append(out, ins...)
	out = append(out, s[pos:]...)
	return out
}
