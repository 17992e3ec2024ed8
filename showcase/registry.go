package main

import (
	"github.com/go-weft/weft/pkg/document"
)

// Demo is one showcase scenario. Each demo gets a fresh buffer and
// cursor and prints the buffer state as it goes.
type Demo struct {
	Name     string
	Subtitle string
	Run      func(buf *document.MemBuffer, cur *document.Cursor) error
}

// demos is the registry of showcase scenarios. Add new demos here to have
// them picked up by name matching and the full run.
var demos = []Demo{
	{"counter", "A redraw-flagged counter ticking in place", runCounter},
	{"shared", "One shared field, two instances", runShared},
	{"listeners", "Change notification without redraw", runListeners},
	{"yaml", "Compiling a definition from YAML", runYAML},
}
