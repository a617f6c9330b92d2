package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/promptpack/go-prompts/pkg/prompt"
)

// Render substitutes data into a template previously returned by
// LoadTemplate. Rendering is strict: any referenced variable missing from
// both data and the manager globals, with no default filter, fails before
// execution. Engine errors surface unchanged.
func (m *Manager) Render(tpl *prompt.Template, data any) (string, error) {
	if tpl == nil {
		return "", fmt.Errorf("prompts: template is required")
	}

	context, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("prompts: convert render context: %w", err)
	}

	if missing := tpl.MissingVariables(context, m.globals); len(missing) > 0 {
		return "", fmt.Errorf("prompts: template %q: undefined variable(s): %s",
			tpl.Name(), strings.Join(missing, ", "))
	}

	return tpl.Execute(context)
}

// toContext normalizes render data into a string-keyed map. Maps pass
// through; anything else round-trips through JSON so structs and nested
// values flatten into plain maps and slices.
func toContext(data any) (map[string]any, error) {
	switch v := data.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case pongo2.Context:
		return map[string]any(v), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out := map[string]any{}
		if err := json.Unmarshal(encoded, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}
