package main

import (
	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/document"
	"github.com/go-weft/weft/pkg/schema"
)

const stampYAML = `
name: stamp
doc: A timestamp-style marker.
immutable:
  - name: author
    type: string
    default: anonymous
mutable:
  - name: note
    type: string
    default: ""
    redraw: true
render: "-- {{.author}}: {{.note}} --"
`

// runYAML loads a definition from YAML, the same path weftgen and editor
// hosts use, and drives the resulting widget.
func runYAML(buf *document.MemBuffer, cur *document.Cursor) error {
	def, err := schema.LoadYAML([]byte(stampYAML))
	if err != nil {
		return err
	}
	typ, err := core.Compile(def)
	if err != nil {
		return err
	}
	w, err := typ.New(map[string]any{"author": "ada"})
	if err != nil {
		return err
	}
	if err := core.Insert(w, cur); err != nil {
		return err
	}
	show("insert stamp", buf)

	if err := w.Set("note", "reviewed"); err != nil {
		return err
	}
	show("set note", buf)
	return nil
}
