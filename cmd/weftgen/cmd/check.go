package cmd

import (
	"fmt"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/schema"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate definition files without generating code",
		Long: `Check loads each definition file, validates it, and compiles it
in-memory, reporting schema errors without writing any files.

Parent references are resolved in argument order, so list base definitions
before the definitions that extend them.

Examples:
  weftgen check spinner.weft.yaml
  weftgen check base.weft.yaml derived.weft.yaml`,
		Usage: "weftgen check <file>...",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one definition file is required\n\nUsage: weftgen check <file>...")
	}

	reg := core.NewRegistry()
	failed := 0
	for _, file := range args {
		def, err := schema.LoadYAMLFile(file)
		if err != nil {
			fmt.Printf("  %s: %v\n", file, err)
			failed++
			continue
		}
		if _, err := reg.Compile(def); err != nil {
			fmt.Printf("  %s: %v\n", file, err)
			failed++
			continue
		}
		fmt.Printf("  %s: ok (%s)\n", file, def.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d definition(s) failed", failed, len(args))
	}
	return nil
}
