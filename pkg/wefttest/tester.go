package wefttest

import (
	"testing"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/document"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/schema"
)

// Tester provides isolated widget testing against an in-memory document.
// It owns a MemBuffer, a cursor, and a type registry, and swaps in a
// capturing error handler for the test's duration so render failures can be
// asserted instead of logged.
type Tester struct {
	buf         *document.MemBuffer
	cur         *document.Cursor
	reg         *core.Registry
	capture     *captureHandler
	prevHandler errors.ErrorHandler
}

// NewTester creates a tester with a fresh buffer and registry.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	buf := document.NewMemBuffer()
	t := &Tester{
		buf:     buf,
		cur:     document.NewCursor(buf),
		reg:     core.NewRegistry(),
		capture: &captureHandler{},
	}
	t.prevHandler = errors.DefaultHandler
	errors.SetHandler(t.capture)
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the global error handler. Must be called if not using
// NewTesterWithT.
func (t *Tester) Cleanup() {
	errors.SetHandler(t.prevHandler)
}

// Buffer returns the in-memory document.
func (t *Tester) Buffer() *document.MemBuffer {
	return t.buf
}

// Cursor returns the tester's cursor.
func (t *Tester) Cursor() *document.Cursor {
	return t.cur
}

// Registry returns the tester's type registry.
func (t *Tester) Registry() *core.Registry {
	return t.reg
}

// BufferText returns the current document content.
func (t *Tester) BufferText() string {
	return t.buf.Text()
}

// SpanFor returns the start and rune length of the span tagged with id, or
// (-1, 0) when none exists.
func (t *Tester) SpanFor(id document.ID) (start, length int) {
	return t.buf.Span(id)
}

// Mount compiles a definition, constructs an instance with the given
// initargs, and inserts it at the current cursor position.
func (t *Tester) Mount(def *schema.Definition, initargs map[string]any, opts ...core.CompileOption) (*core.Widget, error) {
	typ, ok := t.reg.Lookup(def.Name)
	if !ok {
		var err error
		typ, err = t.reg.Compile(def, opts...)
		if err != nil {
			return nil, err
		}
	}
	return t.MountType(typ, initargs)
}

// MountType constructs and inserts an instance of an already compiled type.
func (t *Tester) MountType(typ *core.Type, initargs map[string]any) (*core.Widget, error) {
	w, err := typ.New(initargs)
	if err != nil {
		return nil, err
	}
	if err := core.Insert(w, t.cur); err != nil {
		return nil, err
	}
	return w, nil
}

// MustMountYAML parses a YAML definition and mounts an instance, failing
// the test on any error.
func (t *Tester) MustMountYAML(tb testing.TB, yamlSrc string, initargs map[string]any) *core.Widget {
	tb.Helper()
	def, err := schema.LoadYAML([]byte(yamlSrc))
	if err != nil {
		tb.Fatalf("load definition: %v", err)
	}
	w, err := t.Mount(def, initargs)
	if err != nil {
		tb.Fatalf("mount %s: %v", def.Name, err)
	}
	return w
}

// MustSet writes a field through the widget accessor, failing the test on
// error.
func (t *Tester) MustSet(tb testing.TB, w *core.Widget, name string, value any) {
	tb.Helper()
	if err := w.Set(name, value); err != nil {
		tb.Fatalf("set %s: %v", name, err)
	}
}

// RenderErrors returns the render errors reported while the tester was
// installed.
func (t *Tester) RenderErrors() []*errors.RenderError {
	return t.capture.renders
}

// captureHandler records reported errors instead of logging them.
type captureHandler struct {
	errs    []*errors.WeftError
	panics  []*errors.PanicError
	renders []*errors.RenderError
}

func (h *captureHandler) HandleError(err *errors.WeftError)         { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError)        { h.panics = append(h.panics, err) }
func (h *captureHandler) HandleRenderError(err *errors.RenderError) { h.renders = append(h.renders, err) }
