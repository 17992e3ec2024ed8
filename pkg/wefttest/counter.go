package wefttest

import (
	"strings"
	"text/template"

	"github.com/go-weft/weft/pkg/core"
)

// RenderCounter counts how many times a widget type renders, so tests can
// assert that a mutation produced exactly one redraw. Pass its Render
// method to core.WithRender.
type RenderCounter struct {
	tmpl  *template.Template
	inner core.RenderFunc
	count int
}

// NewRenderCounter creates a counter that renders the given template over
// the widget's fields. It panics on a malformed template; counters are test
// fixtures, not runtime inputs.
func NewRenderCounter(tmplSrc string) *RenderCounter {
	return &RenderCounter{tmpl: template.Must(template.New("counter").Parse(tmplSrc))}
}

// WrapRender creates a counter that delegates rendering to fn.
func WrapRender(fn core.RenderFunc) *RenderCounter {
	return &RenderCounter{inner: fn}
}

// Render implements core.RenderFunc.
func (c *RenderCounter) Render(w *core.Widget) (string, error) {
	c.count++
	if c.inner != nil {
		return c.inner(w)
	}
	data := make(map[string]any)
	for _, name := range w.Type().FieldNames() {
		v, err := w.Get(name)
		if err != nil {
			return "", err
		}
		data[name] = v
	}
	var sb strings.Builder
	if err := c.tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Count returns the number of renders so far.
func (c *RenderCounter) Count() int {
	return c.count
}

// Reset zeroes the counter.
func (c *RenderCounter) Reset() {
	c.count = 0
}
