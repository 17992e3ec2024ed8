// Package document defines the host-document collaborators for the Weft
// toolkit: a position-addressed text buffer, an identity tag channel, and an
// explicit cursor.
//
// The core never talks to a live editor. Everything a widget needs from its
// host is expressed through the Buffer interface plus a Cursor, so the whole
// toolkit is testable against the in-memory MemBuffer.
//
// Positions and lengths are expressed in runes, not bytes. Every inserted
// unit may carry an identity tag (an element ID); reading the tag back at a
// position is how widgets find and remove their own rendered spans.
package document
