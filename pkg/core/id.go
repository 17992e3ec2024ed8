package core

import (
	"github.com/google/uuid"

	"github.com/go-weft/weft/pkg/document"
)

// NewID generates a process-unique element identity.
func NewID() document.ID {
	return document.ID(uuid.NewString())
}
