// Command showcase runs small end-to-end scenarios against an in-memory
// document buffer, printing the buffer after each step. Run it with no
// arguments for every demo, or name the demos to run:
//
//	go run ./showcase counter shared
package main

import (
	"fmt"
	"os"

	"github.com/go-weft/weft/pkg/document"
)

func main() {
	selected := os.Args[1:]
	if len(selected) == 0 {
		for _, d := range demos {
			selected = append(selected, d.Name)
		}
	}

	for _, name := range selected {
		d, ok := lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown demo %q\n", name)
			os.Exit(1)
		}
		fmt.Printf("=== %s: %s\n", d.Name, d.Subtitle)
		buf := document.NewMemBuffer()
		cur := document.NewCursor(buf)
		if err := d.Run(buf, cur); err != nil {
			fmt.Fprintf(os.Stderr, "demo %s: %v\n", d.Name, err)
			os.Exit(1)
		}
		fmt.Println()
	}
}

func lookup(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// show prints the buffer contents with a step label.
func show(step string, buf *document.MemBuffer) {
	fmt.Printf("%-24s %q\n", step, buf.Text())
}
