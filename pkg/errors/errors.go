// Package errors provides structured error handling for the Weft toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindSchema indicates a malformed widget definition.
	KindSchema
	// KindCompile indicates a failure while compiling a definition into a type.
	KindCompile
	// KindRender indicates a failure inside a widget render function.
	KindRender
	// KindDocument indicates a document buffer operation failure.
	KindDocument
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindSchema:
		return "schema"
	case KindCompile:
		return "compile"
	case KindRender:
		return "render"
	case KindDocument:
		return "document"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WeftError represents a structured error in the Weft toolkit.
type WeftError struct {
	// Op is the operation that failed (e.g., "core.Compile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// SchemaError represents a definition-time failure. A definition that
// produces a SchemaError never registers a partial type.
type SchemaError struct {
	// Definition is the name of the offending widget definition.
	Definition string
	// Field is the field name, if the failure is field-specific.
	Field string
	// Reason describes what is wrong.
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("definition %q: field %q: %s", e.Definition, e.Field, e.Reason)
	}
	return fmt.Sprintf("definition %q: %s", e.Definition, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Redraw").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// RenderError represents a failure during a widget render.
type RenderError struct {
	// Widget is the definition name of the widget that failed.
	Widget string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("render panic in widget %s: %v", e.Widget, e.Recovered)
	}
	return fmt.Sprintf("render error in widget %s: %v", e.Widget, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
