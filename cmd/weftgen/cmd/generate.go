package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-weft/weft/cmd/weftgen/internal/gen"
	"github.com/go-weft/weft/pkg/schema"
)

func init() {
	RegisterCommand(&Command{
		Name:  "generate",
		Short: "Generate Go widget types from definition files",
		Long: `Generate Go source from one or more *.weft.yaml definition files.

Each definition produces one file named <name>_weft.go in the output
directory, containing the wrapper struct, a constructor, and typed
accessors. Fields flagged "redraw" get setters that synchronously redraw
the widget.

Examples:
  weftgen generate -out widgets/ -pkg widgets spinner.weft.yaml
  weftgen generate -pkg ui -import example.com/app/ui defs/*.weft.yaml`,
		Usage: "weftgen generate -pkg <package> [-out dir] [-import path] <file>...",
		Run:   runGenerate,
	})
}

func runGenerate(args []string) error {
	flags := flag.NewFlagSet("generate", flag.ContinueOnError)
	outDir := flags.String("out", ".", "output directory")
	pkg := flags.String("pkg", "", "output package name (required)")
	importPath := flags.String("import", "", "output package import path, validated when set")
	if err := flags.Parse(args); err != nil {
		return err
	}
	files := flags.Args()
	if len(files) == 0 {
		return fmt.Errorf("at least one definition file is required\n\nUsage: weftgen generate -pkg <package> <file>...")
	}
	if *pkg == "" {
		return fmt.Errorf("-pkg is required")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, file := range files {
		def, err := schema.LoadYAMLFile(file)
		if err != nil {
			return err
		}
		src, err := gen.Generate(def, gen.Options{
			Package:    *pkg,
			ImportPath: *importPath,
			Source:     filepath.Base(file),
		})
		if err != nil {
			return err
		}
		outPath := filepath.Join(*outDir, gen.FileName(def))
		if err := os.WriteFile(outPath, src, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("  %s -> %s\n", file, outPath)
	}
	return nil
}
