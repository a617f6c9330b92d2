package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/promptpack/go-prompts/pkg/frontmatter"
	"github.com/promptpack/go-prompts/pkg/prompt"
)

// Extension is appended to template names when resolving files on disk.
const Extension = ".j2"

// Local reads templates from a directory of *.j2 files and parses their
// frontmatter blocks.
type Local struct {
	dir    string
	logger *slog.Logger
}

var _ prompt.Store = (*Local)(nil)

// NewLocal returns a Local store rooted at dir.
func NewLocal(dir string, logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{dir: dir, logger: logger}
}

// Load reads <dir>/<name>.j2. A missing file surfaces the filesystem error;
// callers can check it with errors.Is(err, fs.ErrNotExist).
func (s *Local) Load(ctx context.Context, name string) (prompt.Raw, error) {
	if name == "" {
		return prompt.Raw{}, fmt.Errorf("store: template name is required")
	}
	select {
	case <-ctx.Done():
		return prompt.Raw{}, ctx.Err()
	default:
	}

	path := filepath.Join(s.dir, name+Extension)
	data, err := os.ReadFile(path)
	if err != nil {
		return prompt.Raw{}, fmt.Errorf("store: read template %q: %w", name, err)
	}

	meta, body := frontmatter.Parse(data)
	s.logger.Debug("loaded local template", "name", name, "path", path)

	return prompt.Raw{
		Name:   name,
		Source: string(data),
		Body:   string(body),
		Meta:   prompt.Metadata(meta),
	}, nil
}
