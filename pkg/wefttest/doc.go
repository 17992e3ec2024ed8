// Package wefttest provides a widget testing harness for Weft.
//
// # Quick Start
//
// Create a tester, mount a definition, and make assertions against the
// in-memory document:
//
//	func TestSpinner(t *testing.T) {
//	    tester := wefttest.NewTesterWithT(t)
//	    w := tester.MustMountYAML(t, spinnerYAML, nil)
//
//	    tester.MustSet(t, w, "count", 5)
//
//	    if got := tester.BufferText(); got != "count: 5" {
//	        t.Errorf("buffer = %q", got)
//	    }
//	}
//
// # Render Counting
//
// RenderCounter wraps a type's render so tests can assert exactly how many
// redraws a mutation produced:
//
//	counter := wefttest.NewRenderCounter("{{.count}}")
//	typ, _ := core.Compile(def, core.WithRender(counter.Render))
//	// ... mutate ...
//	if counter.Count() != 2 { ... }
package wefttest
