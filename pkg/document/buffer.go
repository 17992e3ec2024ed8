package document

// ID is an opaque element identity attached to rendered spans.
// IDs are generated once at element creation and never change.
type ID string

// NoID marks content that belongs to no element, such as ordinary user text.
const NoID ID = ""

// Buffer is linear mutable text storage with an identity tag side channel.
// Positions and lengths are expressed in runes.
type Buffer interface {
	// InsertAt inserts text at pos, tagging every inserted rune with id.
	// Content from pos onward shifts right. Pass NoID for untagged content.
	InsertAt(pos int, text string, id ID) error

	// DeleteAt removes the single rune at pos.
	DeleteAt(pos int) error

	// TagAt reports the identity tag of the rune at pos. The second return
	// is false when pos is out of range or the rune is untagged.
	TagAt(pos int) (ID, bool)

	// Len returns the buffer length in runes.
	Len() int
}
