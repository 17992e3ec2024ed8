package main

import (
	"fmt"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/document"
	"github.com/go-weft/weft/pkg/schema"
)

// runListeners shows change notification on a field without the redraw
// flag: listeners fire on every write, the document is untouched, and
// widget edits never count as user modifications.
func runListeners(buf *document.MemBuffer, cur *document.Cursor) error {
	typ, err := core.Compile(&schema.Definition{
		Name: "gauge",
		Mutable: []schema.Field{
			{Name: "level", Type: "int", Default: 0},
		},
		Render: "gauge({{.level}})",
	})
	if err != nil {
		return err
	}
	w, err := typ.New(nil)
	if err != nil {
		return err
	}
	if err := core.Insert(w, cur); err != nil {
		return err
	}
	show("insert gauge", buf)

	fired := 0
	remove := w.AddListener(func() { fired++ })

	for i := 1; i <= 3; i++ {
		if err := w.Set("level", i); err != nil {
			return err
		}
	}
	// No redraw flag, so the rendered text is stale until an explicit
	// redraw.
	show("after three sets", buf)
	fmt.Printf("listener fired %d times\n", fired)

	if err := core.Redraw(w, cur); err != nil {
		return err
	}
	show("explicit redraw", buf)

	remove()
	if err := w.Set("level", 9); err != nil {
		return err
	}
	fmt.Printf("after remove, fired %d times\n", fired)
	fmt.Printf("document modified: %v\n", buf.Modified())
	return nil
}
