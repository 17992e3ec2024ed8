package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-weft/weft/pkg/document"
	wefterrors "github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/schema"
)

func spinnerDefinition() *schema.Definition {
	return &schema.Definition{
		Name: "spinner",
		Doc:  "A counter rendered inline.",
		Shared: []schema.Field{
			{Name: "kind", Default: "box"},
		},
		Immutable: []schema.Field{
			{Name: "label", Default: "count"},
		},
		Mutable: []schema.Field{
			{Name: "count", Default: 0, Redraw: true},
			{Name: "suffix", Default: ""},
		},
		State: []schema.Field{
			{Name: "ticks", Default: 0},
		},
		Render: "{{.count}}",
	}
}

func compileSpinner(t *testing.T, opts ...CompileOption) *Type {
	t.Helper()
	typ, err := Compile(spinnerDefinition(), opts...)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return typ
}

func mustNew(t *testing.T, typ *Type, initargs map[string]any) *Widget {
	t.Helper()
	w, err := typ.New(initargs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestWidgetInsertTagsSpanAtPosition(t *testing.T) {
	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, compileSpinner(t), nil)

	buf.InsertAt(0, "ab", document.NoID)
	cur.MoveTo(1)

	if err := Insert(w, cur); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !w.IsVisible() {
		t.Error("widget should be visible after insert")
	}
	if got := w.Position(); got != 1 {
		t.Errorf("Position() = %d, want 1", got)
	}
	if got := buf.Text(); got != "a0b" {
		t.Errorf("Text() = %q, want %q", got, "a0b")
	}
	start, length := buf.Span(w.ID())
	if start != 1 || length != 1 {
		t.Errorf("Span = (%d, %d), want (1, 1)", start, length)
	}
	if buf.Modified() {
		t.Error("widget insertion is a presentation edit, not a user modification")
	}
}

func TestWidgetDeleteRemovesSpan(t *testing.T) {
	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, compileSpinner(t), map[string]any{"count": 42})

	Insert(w, cur)
	if err := Delete(w, cur); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if w.IsVisible() {
		t.Error("widget should be invisible after delete")
	}
	if start, _ := buf.Span(w.ID()); start != -1 {
		t.Error("no tagged span should remain after delete")
	}
	if got := buf.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestWidgetRedrawInvisibleIsNoOp(t *testing.T) {
	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, compileSpinner(t), nil)

	Insert(w, cur)
	Delete(w, cur)
	before := buf.Text()

	if err := Redraw(w, cur); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if got := buf.Text(); got != before {
		t.Errorf("redraw of an invisible widget changed the document: %q -> %q", before, got)
	}
	if w.IsVisible() {
		t.Error("redraw must not resurrect a deleted widget")
	}
}

func TestWidgetRedrawReflectsCurrentValues(t *testing.T) {
	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, compileSpinner(t), nil)

	buf.InsertAt(0, "[]", document.NoID)
	cur.MoveTo(1)
	Insert(w, cur)
	if got := buf.Text(); got != "[0]" {
		t.Fatalf("Text() = %q, want %q", got, "[0]")
	}

	// Write around the accessor, then redraw explicitly: the result equals
	// a fresh render of the current values at the same slot.
	w.values["count"] = 7
	if err := Redraw(w, cur); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if got := buf.Text(); got != "[7]" {
		t.Errorf("Text() = %q, want %q", got, "[7]")
	}
	if got := w.Position(); got != 1 {
		t.Errorf("Position() = %d, want 1 (same slot)", got)
	}
}

func TestRedrawFlaggedSetTriggersExactlyOneRedraw(t *testing.T) {
	renders := 0
	typ := compileSpinner(t, WithRender(func(w *Widget) (string, error) {
		renders++
		return fmt.Sprintf("%v", FieldOf[int](w, "count").Value()), nil
	}))

	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, typ, nil)

	Insert(w, cur)
	if renders != 1 {
		t.Fatalf("renders = %d after insert, want 1", renders)
	}

	if err := w.Set("count", 5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if renders != 2 {
		t.Errorf("renders = %d after redraw-flagged set, want 2 (exactly one redraw)", renders)
	}
	if got := buf.Text(); got != "5" {
		t.Errorf("Text() = %q, want %q", got, "5")
	}
}

func TestUnflaggedSetDoesNotRedraw(t *testing.T) {
	renders := 0
	typ := compileSpinner(t, WithRender(func(w *Widget) (string, error) {
		renders++
		return "x", nil
	}))

	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, typ, nil)
	Insert(w, cur)

	if err := w.Set("suffix", "!"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if renders != 1 {
		t.Errorf("renders = %d, want 1 (no redraw for unflagged field)", renders)
	}
}

// State fields compile with the same mechanics as mutable fields, so a
// redraw-flagged state field redraws too. The kind difference is
// documentation intent, not behavior.
func TestStateFieldMayCarryRedrawFlag(t *testing.T) {
	def := &schema.Definition{
		Name: "meter",
		State: []schema.Field{
			{Name: "level", Default: 0, Redraw: true},
			{Name: "samples", Default: 0},
		},
		Render: "{{.level}}",
	}
	typ, err := Compile(def)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, typ, nil)
	Insert(w, cur)

	if err := w.Set("level", 3); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := buf.Text(); got != "3" {
		t.Errorf("Text() = %q, want %q (flagged state field redraws)", got, "3")
	}

	if err := w.Set("samples", 9); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := buf.Text(); got != "3" {
		t.Errorf("Text() = %q, want %q (unflagged state field does not redraw)", got, "3")
	}
}

func TestSetBeforeInsertDoesNotRender(t *testing.T) {
	renders := 0
	typ := compileSpinner(t, WithRender(func(w *Widget) (string, error) {
		renders++
		return "x", nil
	}))
	w := mustNew(t, typ, nil)

	if err := w.Set("count", 3); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if renders != 0 {
		t.Errorf("renders = %d, want 0 before any insert", renders)
	}
	if got := FieldOf[int](w, "count").Value(); got != 3 {
		t.Errorf("count = %d, want 3 (write still lands)", got)
	}
}

func TestSharedFieldSingleCopy(t *testing.T) {
	typ := compileSpinner(t)
	a := mustNew(t, typ, nil)
	b := mustNew(t, typ, nil)

	for _, w := range []*Widget{a, b} {
		v, err := w.Get("kind")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v != "box" {
			t.Errorf("kind = %v, want %q", v, "box")
		}
	}

	if err := typ.SetShared("kind", "pill"); err != nil {
		t.Fatalf("SetShared: %v", err)
	}
	for _, w := range []*Widget{a, b} {
		if v, _ := w.Get("kind"); v != "pill" {
			t.Errorf("kind = %v after SetShared, want %q (single copy)", v, "pill")
		}
	}

	if err := a.Set("kind", "oval"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("instance write to shared field = %v, want ErrReadOnly", err)
	}
}

func TestImmutableFieldConstructionOnly(t *testing.T) {
	typ := compileSpinner(t)
	a := mustNew(t, typ, map[string]any{"label": "first"})
	b := mustNew(t, typ, map[string]any{"label": "second"})

	if v, _ := a.Get("label"); v != "first" {
		t.Errorf("a.label = %v, want %q", v, "first")
	}
	if v, _ := b.Get("label"); v != "second" {
		t.Errorf("b.label = %v, want %q", v, "second")
	}

	if err := a.Set("label", "changed"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Set on immutable field = %v, want ErrReadOnly", err)
	}
}

func TestNewRejectsBadInitargs(t *testing.T) {
	typ := compileSpinner(t)

	if _, err := typ.New(map[string]any{"nope": 1}); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown initarg = %v, want ErrUnknownField", err)
	}
	if _, err := typ.New(map[string]any{"kind": "x"}); !errors.Is(err, ErrReadOnly) {
		t.Errorf("shared initarg = %v, want ErrReadOnly", err)
	}
	if _, err := typ.New(map[string]any{"count": "five"}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("mistyped initarg = %v, want ErrTypeMismatch", err)
	}
}

func TestSetRejectsBadValues(t *testing.T) {
	w := mustNew(t, compileSpinner(t), nil)

	if err := w.Set("nope", 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field = %v, want ErrUnknownField", err)
	}
	if err := w.Set("count", "five"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("mistyped value = %v, want ErrTypeMismatch", err)
	}
	if _, err := w.Get("nope"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field get = %v, want ErrUnknownField", err)
	}
}

func TestSetNotifiesListeners(t *testing.T) {
	w := mustNew(t, compileSpinner(t), nil)
	notified := 0
	w.AddListener(func() { notified++ })

	w.Set("count", 1)
	w.Set("suffix", "!")

	if notified != 2 {
		t.Errorf("listeners notified %d times, want 2", notified)
	}
}

func TestBoundedDeleteScan(t *testing.T) {
	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, compileSpinner(t), map[string]any{"count": 123})
	Insert(w, cur) // renders "123"

	// A foreign edit removes the middle of the span. The delete scan stops
	// at the first rune that no longer carries the widget's tag and never
	// exceeds the last render length.
	buf.DeleteAt(1)
	buf.UserInsert(1, "zz")

	if err := Delete(w, cur); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := buf.Text(); got != "zz3" {
		t.Errorf("Text() = %q, want %q (scan stops at foreign content)", got, "zz3")
	}
}

func TestDeleteScanBoundByLastRenderLen(t *testing.T) {
	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, compileSpinner(t), map[string]any{"count": 12})
	Insert(w, cur) // renders "12", lastRenderLen = 2

	// Forge an over-long span with this widget's tag. The bounded scan
	// must not remove more than the last render produced.
	buf.InsertAt(2, "XYZ", w.ID())

	if err := Delete(w, cur); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := buf.Text(); got != "XYZ" {
		t.Errorf("Text() = %q, want %q (at most lastRenderLen runes removed)", got, "XYZ")
	}
}

func TestRenderPanicReportsAndRollsBack(t *testing.T) {
	handler := &captureRenderHandler{}
	wefterrors.SetHandler(handler)
	defer wefterrors.SetHandler(nil)

	typ := compileSpinner(t, WithRender(func(w *Widget) (string, error) {
		panic("render exploded")
	}))

	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, typ, nil)

	err := Insert(w, cur)
	var rerr *wefterrors.RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("Insert = %v, want RenderError", err)
	}
	if w.IsVisible() {
		t.Error("failed insert must roll back visibility")
	}
	if got := buf.Text(); got != "" {
		t.Errorf("Text() = %q, want empty (no partial insert)", got)
	}
	if len(handler.renders) != 1 {
		t.Errorf("reported %d render errors, want 1", len(handler.renders))
	}
}

func TestRenderTemplateError(t *testing.T) {
	def := spinnerDefinition()
	def.Render = "{{.count.bogus}}"
	typ, err := Compile(def)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	w := mustNew(t, typ, nil)
	cur := document.NewCursor(document.NewMemBuffer())

	insertErr := Insert(w, cur)
	var rerr *wefterrors.RenderError
	if !errors.As(insertErr, &rerr) {
		t.Fatalf("Insert = %v, want RenderError", insertErr)
	}
}

func TestPointAtWidget(t *testing.T) {
	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, compileSpinner(t), map[string]any{"count": 42})
	Insert(w, cur)

	cur.MoveTo(0)
	if !PointAt(w, cur) {
		t.Error("cursor at span start should be inside the widget")
	}
	cur.MoveTo(2)
	if ok := PointAt(w, cur); ok {
		t.Error("cursor past the span should be outside the widget")
	}
}

// The documented end-to-end scenario: insert shows "0", setting count to 5
// rewrites the same slot.
func TestCounterScenario(t *testing.T) {
	buf := document.NewMemBuffer()
	cur := document.NewCursor(buf)
	w := mustNew(t, compileSpinner(t), nil)

	buf.InsertAt(0, "n=", document.NoID)
	cur.MoveTo(2)
	Insert(w, cur)
	if got := buf.Text(); got != "n=0" {
		t.Fatalf("Text() = %q, want %q", got, "n=0")
	}

	if err := w.Set("count", 5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := buf.Text(); got != "n=5" {
		t.Errorf("Text() = %q, want %q", got, "n=5")
	}
	start, length := buf.Span(w.ID())
	if start != 2 || length != 1 {
		t.Errorf("Span = (%d, %d), want (2, 1): old span removed, new at same slot", start, length)
	}
}

type captureRenderHandler struct {
	wefterrors.LogHandler
	renders []*wefterrors.RenderError
}

func (h *captureRenderHandler) HandleRenderError(err *wefterrors.RenderError) {
	h.renders = append(h.renders, err)
}
