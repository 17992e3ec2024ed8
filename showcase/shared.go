package main

import (
	"fmt"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/document"
	"github.com/go-weft/weft/pkg/schema"
)

// runShared compiles a type with a shared field and inserts two instances.
// Changing the shared value on the type is visible through both widgets on
// their next redraw.
func runShared(buf *document.MemBuffer, cur *document.Cursor) error {
	typ, err := core.Compile(&schema.Definition{
		Name: "badge",
		Shared: []schema.Field{
			{Name: "style", Type: "string", Default: "plain"},
		},
		Immutable: []schema.Field{
			{Name: "label", Type: "string", Default: ""},
		},
		Render: "<{{.style}}:{{.label}}>",
	})
	if err != nil {
		return err
	}

	a, err := typ.New(map[string]any{"label": "alpha"})
	if err != nil {
		return err
	}
	b, err := typ.New(map[string]any{"label": "beta"})
	if err != nil {
		return err
	}

	cur.MoveTo(0)
	if err := core.Insert(a, cur); err != nil {
		return err
	}
	if err := core.Insert(b, cur); err != nil {
		return err
	}
	show("two badges", buf)

	// Shared fields are set on the type, never through an instance.
	if err := a.Set("style", "bold"); err != nil {
		fmt.Printf("instance set rejected: %v\n", err)
	}
	if err := typ.SetShared("style", "bold"); err != nil {
		return err
	}
	// Redraw back to front so earlier spans keep their recorded
	// offsets while later ones change length.
	for _, w := range []*core.Widget{b, a} {
		if err := core.Redraw(w, cur); err != nil {
			return err
		}
	}
	show("restyled", buf)
	return nil
}
