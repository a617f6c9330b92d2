package prompts

import (
	"context"

	"github.com/promptpack/go-prompts/pkg/prompt"
)

// Load constructs a manager from the given options and loads a single
// template. It is the simplest entry point for callers that do not need to
// hold a Manager.
func Load(ctx context.Context, name string, options ...Option) (*prompt.Template, error) {
	manager, err := New(options...)
	if err != nil {
		return nil, err
	}
	return manager.LoadTemplate(ctx, name)
}

// Render loads the named template and renders it against data in one call.
func Render(ctx context.Context, name string, data any, options ...Option) (string, error) {
	manager, err := New(options...)
	if err != nil {
		return "", err
	}
	tpl, err := manager.LoadTemplate(ctx, name)
	if err != nil {
		return "", err
	}
	return manager.Render(tpl, data)
}
