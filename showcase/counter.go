package main

import (
	"fmt"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/document"
	"github.com/go-weft/weft/pkg/schema"
)

// runCounter inserts a counter widget into a document next to user text,
// then ticks it. Every Set on the redraw-flagged field rewrites the
// widget's span in place; the surrounding text never moves.
func runCounter(buf *document.MemBuffer, cur *document.Cursor) error {
	typ, err := core.Compile(&schema.Definition{
		Name: "counter",
		Mutable: []schema.Field{
			{Name: "count", Type: "int", Default: 0, Redraw: true},
		},
		Render: "[count: {{.count}}]",
	})
	if err != nil {
		return err
	}

	if err := buf.UserInsert(0, "before | after"); err != nil {
		return err
	}
	show("user text", buf)

	w, err := typ.New(nil)
	if err != nil {
		return err
	}
	cur.MoveTo(len("before |"))
	if err := core.Insert(w, cur); err != nil {
		return err
	}
	show("insert counter", buf)

	count := core.FieldOf[int](w, "count")
	for i := 1; i <= 5; i++ {
		if err := count.Set(i); err != nil {
			return err
		}
		show(fmt.Sprintf("tick %d", i), buf)
	}

	if err := core.Delete(w, cur); err != nil {
		return err
	}
	show("delete counter", buf)
	return nil
}
