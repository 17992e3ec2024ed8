package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestWeftErrorString(t *testing.T) {
	err := &WeftError{
		Op:   "core.Compile",
		Kind: KindCompile,
		Err:  errors.New("boom"),
	}
	got := err.Error()
	if !strings.Contains(got, "core.Compile") || !strings.Contains(got, "compile") {
		t.Errorf("error string %q should contain op and kind", got)
	}
}

func TestWeftErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &WeftError{Op: "op", Kind: KindDocument, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindSchema, "schema"},
		{KindCompile, "compile"},
		{KindRender, "render"},
		{KindDocument, "document"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSchemaErrorString(t *testing.T) {
	err := &SchemaError{Definition: "spinner", Field: "count", Reason: "duplicate field name"}
	got := err.Error()
	if !strings.Contains(got, "spinner") || !strings.Contains(got, "count") {
		t.Errorf("SchemaError.Error() = %q, want definition and field names", got)
	}

	err = &SchemaError{Definition: "1bad", Reason: "name is not a valid identifier"}
	if !strings.Contains(err.Error(), "1bad") {
		t.Errorf("SchemaError.Error() = %q, want definition name", err.Error())
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "core.Redraw"
	if got := err.Error(); got != "panic in core.Redraw: test panic" {
		t.Errorf("PanicError.Error() = %q", got)
	}
}

func TestRenderErrorString(t *testing.T) {
	err := &RenderError{Widget: "spinner", Recovered: "oops"}
	if !strings.Contains(err.Error(), "render panic") {
		t.Errorf("RenderError.Error() = %q, want panic form", err.Error())
	}

	err = &RenderError{Widget: "spinner", Err: errors.New("bad template")}
	if !strings.Contains(err.Error(), "render error") {
		t.Errorf("RenderError.Error() = %q, want error form", err.Error())
	}
}

// captureHandler records reported errors for testing.
type captureHandler struct {
	LogHandler
	errs    []*WeftError
	panics  []*PanicError
	renders []*RenderError
}

func (h *captureHandler) HandleError(err *WeftError)       { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)      { h.panics = append(h.panics, err) }
func (h *captureHandler) HandleRenderError(e *RenderError) { h.renders = append(h.renders, e) }

func TestReportSetsTimestamp(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&WeftError{Op: "op", Kind: KindUnknown, Err: errors.New("x")})

	if len(handler.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.errs))
	}
	if handler.errs[0].Timestamp.IsZero() {
		t.Error("Report should fill in a zero timestamp")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(handler.panics))
	}
	if handler.panics[0].Op != "test.op" {
		t.Errorf("panic op = %q, want %q", handler.panics[0].Op, "test.op")
	}
	if handler.panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected LogHandler after SetHandler(nil), got %T", DefaultHandler)
	}
}
