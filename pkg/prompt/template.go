package prompt

import (
	"context"
	"fmt"

	"github.com/flosch/pongo2/v6"
)

const (
	defaultDescription = "No description provided"
	defaultAuthor      = "Unknown"
)

// Metadata holds the key/value pairs attached to a template, either parsed
// from a frontmatter block or mapped from remote table columns. Keys beyond
// description and author are preserved as-is.
type Metadata map[string]string

// Description returns the template description, falling back to a fixed
// placeholder when none was provided.
func (m Metadata) Description() string {
	if v, ok := m["description"]; ok && v != "" {
		return v
	}
	return defaultDescription
}

// Author returns the template author, falling back to "Unknown".
func (m Metadata) Author() string {
	if v, ok := m["author"]; ok && v != "" {
		return v
	}
	return defaultAuthor
}

// Raw is the payload a Store returns for a template name: the source text as
// fetched, the body with any frontmatter stripped, and the metadata the store
// resolved for it.
type Raw struct {
	Name   string
	Source string
	Body   string
	Meta   Metadata
}

// Store fetches raw template payloads by name. Implementations decide where
// the text lives (filesystem directory, remote table) and surface their
// native errors on failure.
type Store interface {
	Load(ctx context.Context, name string) (Raw, error)
}

// Info is the introspection result for a loaded template.
type Info struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Variables   []string `json:"variables"`
}

// Template is a compiled, render-ready template. It carries the raw source
// text it was built from, its metadata, and the variable references found by
// static analysis. Immutable after Compile.
type Template struct {
	name   string
	tpl    *pongo2.Template
	source string
	body   string
	meta   Metadata
	refs   []VarRef
}

// Compile parses the body of a Raw payload against the provided template set
// and returns the render-ready Template. Syntax errors surface from the
// engine unchanged.
func Compile(set *pongo2.TemplateSet, raw Raw) (*Template, error) {
	if set == nil {
		return nil, fmt.Errorf("prompt: template set is required")
	}

	tpl, err := set.FromString(raw.Body)
	if err != nil {
		return nil, fmt.Errorf("prompt: compile template %q: %w", raw.Name, err)
	}

	meta := raw.Meta
	if meta == nil {
		meta = Metadata{}
	}

	return &Template{
		name:   raw.Name,
		tpl:    tpl,
		source: raw.Source,
		body:   raw.Body,
		meta:   meta,
		refs:   ScanVariables(raw.Body),
	}, nil
}

// Name returns the name the template was loaded under.
func (t *Template) Name() string { return t.name }

// Source returns the raw text the template was loaded from, including any
// frontmatter block.
func (t *Template) Source() string { return t.source }

// Body returns the template text handed to the engine, with frontmatter
// stripped.
func (t *Template) Body() string { return t.body }

// Meta returns the metadata attached at load time.
func (t *Template) Meta() Metadata { return t.meta }

// Variables returns the names of all variables the template body references,
// in first-use order.
func (t *Template) Variables() []string {
	names := make([]string, 0, len(t.refs))
	for _, ref := range t.refs {
		names = append(names, ref.Name)
	}
	return names
}

// MissingVariables reports referenced variables that are absent from both the
// render context and the engine globals and that carry no default filter.
func (t *Template) MissingVariables(data map[string]any, globals map[string]any) []string {
	var missing []string
	for _, ref := range t.refs {
		if ref.HasDefault {
			continue
		}
		if _, ok := data[ref.Name]; ok {
			continue
		}
		if _, ok := globals[ref.Name]; ok {
			continue
		}
		missing = append(missing, ref.Name)
	}
	return missing
}

// Execute renders the template against the given context. Engine execution
// errors surface unchanged.
func (t *Template) Execute(data map[string]any) (string, error) {
	if data == nil {
		data = map[string]any{}
	}
	out, err := t.tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("prompt: execute template %q: %w", t.name, err)
	}
	return out, nil
}
