package schema

import (
	"fmt"

	"github.com/go-weft/weft/pkg/errors"
)

// Keyword marks the start of a segment in a flat definition list.
type Keyword string

// Recognized segment keywords.
const (
	KeywordShared    Keyword = "shared"
	KeywordImmutable Keyword = "immutable"
	KeywordMutable   Keyword = "mutable"
	KeywordState     Keyword = "state"
	KeywordRender    Keyword = "render"
	KeywordInit      Keyword = "init"
)

var segmentKeywords = map[Keyword]bool{
	KeywordShared:    true,
	KeywordImmutable: true,
	KeywordMutable:   true,
	KeywordState:     true,
	KeywordRender:    true,
	KeywordInit:      true,
}

// Segments holds the grouped items keyed by segment keyword.
type Segments map[Keyword][]any

// Group splits a flat keyword-delimited list into named segments. Everything
// between two recognized keywords belongs to the first of them. A Keyword
// value that is not one of the recognized segment keywords is treated as
// ordinary data and falls into the preceding segment. Items before the first
// recognized keyword are an error.
func Group(items []any) (Segments, error) {
	segs := make(Segments)
	var current Keyword
	for i, item := range items {
		if kw, ok := item.(Keyword); ok && segmentKeywords[kw] {
			current = kw
			if _, exists := segs[current]; !exists {
				segs[current] = nil
			}
			continue
		}
		if current == "" {
			return nil, &errors.SchemaError{
				Reason: fmt.Sprintf("item %d appears before any segment keyword", i),
			}
		}
		segs[current] = append(segs[current], item)
	}
	return segs, nil
}

// FromList builds a Definition from a flat keyword-delimited list, the raw
// form a caller assembles by hand:
//
//	def, err := schema.FromList("spinner",
//	    schema.KeywordMutable,
//	    schema.Field{Name: "count", Default: 0, Redraw: true},
//	    schema.KeywordRender,
//	    "count: {{.count}}",
//	)
//
// Field segments accept Field values or bare string names. The render
// segment accepts a single template string.
func FromList(name string, items ...any) (*Definition, error) {
	segs, err := Group(items)
	if err != nil {
		return nil, err
	}

	def := &Definition{Name: name}
	for kw, seg := range segs {
		switch kw {
		case KeywordShared, KeywordImmutable, KeywordMutable, KeywordState:
			fields, err := fieldSegment(name, kw, seg)
			if err != nil {
				return nil, err
			}
			switch kw {
			case KeywordShared:
				def.Shared = fields
			case KeywordImmutable:
				def.Immutable = fields
			case KeywordMutable:
				def.Mutable = fields
			case KeywordState:
				def.State = fields
			}
		case KeywordRender:
			if len(seg) != 1 {
				return nil, &errors.SchemaError{
					Definition: name,
					Reason:     fmt.Sprintf("render segment wants exactly one template string, got %d items", len(seg)),
				}
			}
			tmpl, ok := seg[0].(string)
			if !ok {
				return nil, &errors.SchemaError{
					Definition: name,
					Reason:     fmt.Sprintf("render segment wants a template string, got %T", seg[0]),
				}
			}
			def.Render = tmpl
		case KeywordInit:
			// Initializers are functions and cannot be expressed in a flat
			// list; compile-time options carry them instead.
			if len(seg) != 0 {
				return nil, &errors.SchemaError{
					Definition: name,
					Reason:     "init segment takes no list items; pass an init function at compile time",
				}
			}
		}
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func fieldSegment(name string, kw Keyword, seg []any) ([]Field, error) {
	fields := make([]Field, 0, len(seg))
	for _, item := range seg {
		switch v := item.(type) {
		case Field:
			fields = append(fields, v)
		case string:
			fields = append(fields, Field{Name: v})
		default:
			return nil, &errors.SchemaError{
				Definition: name,
				Reason:     fmt.Sprintf("%s segment wants Field or string items, got %T", kw, item),
			}
		}
	}
	return fields, nil
}
