// Command weftgen generates Go widget types from declarative definitions.
package main

import (
	"os"

	"github.com/go-weft/weft/cmd/weftgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
