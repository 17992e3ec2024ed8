// Package gen renders Go source from declarative widget definitions.
package gen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/mod/module"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/schema"
)

//go:embed templates/widget.go.tmpl
var templateFS embed.FS

// Options controls code generation for one definition.
type Options struct {
	// Package is the output package name.
	Package string
	// ImportPath optionally records the output package's import path; when
	// set it is validated as a Go import path.
	ImportPath string
	// Source names the definition file, for the generated-code header.
	Source string
}

type accessorData struct {
	GoName    string
	GoType    string
	FieldName string
	Kind      string
	Settable  bool
	Redraw    bool
	Doc       string
}

type typeData struct {
	Package    string
	Source     string
	DefName    string
	TypeName   string
	VarPrefix  string
	Prefix     string
	Doc        string
	DefLiteral string
	Accessors  []accessorData
}

// Generate renders the Go source for one widget definition: a wrapper
// struct, a lazily compiled type, a constructor, and one accessor pair per
// field. Setters exist only for mutable and state fields; redraw-flagged
// fields get setters that synchronously redraw through the core accessor
// contract.
func Generate(def *schema.Definition, opts Options) ([]byte, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if def.Render == "" {
		// Generated types compile their definition at runtime, so the
		// render template has to live in the definition itself.
		return nil, &errors.SchemaError{
			Definition: def.Name,
			Reason:     "definition has no render body",
		}
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("output package %q is not a valid identifier", opts.Package)
	}
	if opts.ImportPath != "" {
		if err := module.CheckImportPath(opts.ImportPath); err != nil {
			return nil, fmt.Errorf("invalid import path: %w", err)
		}
	}

	data := typeData{
		Package:   opts.Package,
		Source:    opts.Source,
		DefName:   def.Name,
		TypeName:  exportName(def.Name),
		VarPrefix: unexportName(def.Name),
		Prefix:    exportName(def.AccessorPrefix()),
		Doc:       def.Doc,
	}
	if data.Source == "" {
		data.Source = def.Name
	}

	lit, err := definitionLiteral(def)
	if err != nil {
		return nil, err
	}
	data.DefLiteral = lit

	for _, tf := range def.AllFields() {
		goType, err := goTypeOf(def.Name, tf)
		if err != nil {
			return nil, err
		}
		settable := tf.Kind == schema.KindMutable || tf.Kind == schema.KindState
		data.Accessors = append(data.Accessors, accessorData{
			GoName:    exportName(tf.Name),
			GoType:    goType,
			FieldName: tf.Name,
			Kind:      tf.Kind.String(),
			Settable:  settable,
			Redraw:    settable && tf.Redraw,
			Doc:       tf.Doc,
		})
	}

	tmpl, err := template.ParseFS(templateFS, "templates/widget.go.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", def.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source for %s: %w", def.Name, err)
	}
	return src, nil
}

// FileName returns the conventional output file name for a definition.
func FileName(def *schema.Definition) string {
	return strings.ToLower(def.Name) + "_weft.go"
}

// goTypeOf resolves the Go type for a field, explicit or inferred from the
// default value's type.
func goTypeOf(defName string, tf schema.TaggedField) (string, error) {
	if tf.Type != "" {
		return tf.Type, nil
	}
	switch tf.Default.(type) {
	case nil:
		return "any", nil
	case string:
		return "string", nil
	case int:
		return "int", nil
	case float64:
		return "float64", nil
	case bool:
		return "bool", nil
	default:
		return "", &errors.SchemaError{
			Definition: defName,
			Field:      tf.Name,
			Reason:     fmt.Sprintf("cannot generate code for default of type %T", tf.Default),
		}
	}
}

// definitionLiteral renders the definition as a Go composite literal, so
// the generated file is self-contained apart from the weft packages.
func definitionLiteral(def *schema.Definition) (string, error) {
	var sb strings.Builder
	sb.WriteString("&schema.Definition{\n")
	fmt.Fprintf(&sb, "Name: %q,\n", def.Name)
	if def.Prefix != "" {
		fmt.Fprintf(&sb, "Prefix: %q,\n", def.Prefix)
	}
	if def.Doc != "" {
		fmt.Fprintf(&sb, "Doc: %q,\n", def.Doc)
	}
	kinds := []struct {
		label  string
		fields []schema.Field
	}{
		{"Shared", def.Shared},
		{"Immutable", def.Immutable},
		{"Mutable", def.Mutable},
		{"State", def.State},
	}
	for _, k := range kinds {
		if len(k.fields) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s: []schema.Field{\n", k.label)
		for _, f := range k.fields {
			lit, err := fieldLiteral(def.Name, f)
			if err != nil {
				return "", err
			}
			sb.WriteString(lit)
			sb.WriteString(",\n")
		}
		sb.WriteString("},\n")
	}
	if def.Render != "" {
		fmt.Fprintf(&sb, "Render: %q,\n", def.Render)
	}
	sb.WriteString("}")
	return sb.String(), nil
}

func fieldLiteral(defName string, f schema.Field) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{Name: %q", f.Name)
	if f.Type != "" {
		fmt.Fprintf(&sb, ", Type: %q", f.Type)
	}
	if f.Default != nil {
		lit, err := valueLiteral(defName, f)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, ", Default: %s", lit)
	}
	if f.Doc != "" {
		fmt.Fprintf(&sb, ", Doc: %q", f.Doc)
	}
	if f.Redraw {
		sb.WriteString(", Redraw: true")
	}
	sb.WriteString("}")
	return sb.String(), nil
}

func valueLiteral(defName string, f schema.Field) (string, error) {
	switch v := f.Default.(type) {
	case string:
		return strconv.Quote(v), nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", &errors.SchemaError{
			Definition: defName,
			Field:      f.Name,
			Reason:     fmt.Sprintf("cannot generate code for default of type %T", f.Default),
		}
	}
}

func exportName(name string) string {
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func unexportName(name string) string {
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
