// Package core provides the element, widget, and schema-compilation
// machinery of the Weft toolkit.
//
// # Core Types
//
// Element is the minimal renderable unit: it has an identity, a visibility
// flag, and insert/delete/redraw lifecycle hooks. Visibility is tracked
// centrally by the package-level lifecycle functions, so no concrete element
// re-implements the "don't redraw something that was deleted" guard.
//
// Widget is the concrete Element: it is observable, tracks its render
// position in the document, and implements insert as render-then-place,
// delete as a bounded scan over its tagged span, and redraw as
// delete-then-reinsert at the same slot.
//
// # Schema Compilation
//
// Compile turns a declarative schema.Definition into a Type: a runtime
// widget type with field accessors derived from the four field kinds.
// Mutating a redraw-flagged field through its accessor synchronously
// re-renders the widget; that is the central reactive contract:
//
//	def, _ := schema.FromList("spinner",
//	    schema.KeywordMutable,
//	    schema.Field{Name: "count", Default: 0, Redraw: true},
//	    schema.KeywordRender, "count: {{.count}}",
//	)
//	typ, _ := core.Compile(def)
//	w, _ := typ.New(nil)
//	core.Insert(w, cur)     // document shows "count: 0"
//	w.Set("count", 5)       // document now shows "count: 5"
//
// # Typed Access
//
// FieldOf wraps a widget field in a typed handle:
//
//	count := core.FieldOf[int](w, "count")
//	count.Set(count.Value() + 1) // triggers a redraw when flagged
//
// # Constructor Conventions
//
// Long-lived mutable objects (Registry, Widget instances via Type.New) use
// NewX constructors returning pointers. Declarative inputs (schema.Field,
// schema.Definition) are plain struct literals.
package core
