package prompts

import (
	"context"
	"io"
	"strings"

	"github.com/promptpack/go-prompts/internal/store"
	"github.com/promptpack/go-prompts/pkg/prompt"
)

// storeLoader satisfies pongo2.TemplateLoader so {% include %} and
// {% extends %} resolve through the configured store when templates do not
// live on the local filesystem.
type storeLoader struct {
	store prompt.Store
}

func (l *storeLoader) Abs(_, name string) string {
	return name
}

func (l *storeLoader) Get(path string) (io.Reader, error) {
	name := strings.TrimSuffix(path, store.Extension)
	raw, err := l.store.Load(context.Background(), name)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(raw.Body), nil
}
