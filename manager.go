package prompts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/supabase-community/postgrest-go"

	"github.com/promptpack/go-prompts/internal/store"
	"github.com/promptpack/go-prompts/pkg/cache"
	"github.com/promptpack/go-prompts/pkg/prompt"
)

// Manager is the entry point for loading and rendering prompt templates. It
// resolves a backend once at construction, compiles templates through a
// shared engine set, and keeps recently used templates in a bounded LRU.
// It performs no locking of its own; see the package documentation.
type Manager struct {
	settings Settings
	logger   *slog.Logger
	store    prompt.Store
	set      *pongo2.TemplateSet
	cache    *cache.Cache[string, *prompt.Template]
	client   *postgrest.Client
	globals  map[string]any
}

// New builds a Manager. Settings resolve from the environment unless
// supplied via WithSettings; the store resolves to remote mode only when the
// Supabase endpoint and key are both configured and not overridden.
func New(options ...Option) (*Manager, error) {
	opts := &managerOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(opts)
	}

	var settings Settings
	if opts.settings != nil {
		settings = *opts.settings
	} else {
		loaded, err := LoadSettings()
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	logger := opts.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Manager{
		settings: settings,
		logger:   logger,
		globals:  opts.globals,
	}

	switch {
	case opts.store != nil:
		m.store = opts.store
		m.set = pongo2.NewSet("prompts", &storeLoader{store: opts.store})
	case settings.Remote():
		m.client = store.NewSupabaseClient(settings.SupabaseURL, settings.SupabaseKey)
		remote := store.NewSupabase(m.client, logger)
		m.store = remote
		m.set = pongo2.NewSet("prompts", &storeLoader{store: remote})
		logger.Debug("using remote template store", "url", settings.SupabaseURL)
	default:
		loader, err := pongo2.NewLocalFileSystemLoader(settings.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("prompts: create template loader: %w", err)
		}
		m.store = store.NewLocal(settings.TemplatePath, logger)
		m.set = pongo2.NewSet("prompts", loader)
		logger.Debug("using local template store", "path", settings.TemplatePath)
	}

	if len(m.globals) > 0 {
		if m.set.Globals == nil {
			m.set.Globals = make(pongo2.Context, len(m.globals))
		}
		for key, value := range m.globals {
			m.set.Globals[strings.TrimSpace(key)] = value
		}
	}

	if settings.CacheEnabled && !opts.noCache {
		size := settings.CacheSize
		if opts.cacheSize > 0 {
			size = opts.cacheSize
		}
		templates, err := cache.New[string, *prompt.Template](size)
		if err != nil {
			return nil, err
		}
		m.cache = templates
	}

	return m, nil
}

// LoadTemplate fetches and compiles the named template, reusing the cached
// compilation when caching is enabled. Store and compile failures surface
// verbatim.
func (m *Manager) LoadTemplate(ctx context.Context, name string) (*prompt.Template, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("prompts: template name is required")
	}

	return m.cache.GetOrLoad(trimmed, func() (*prompt.Template, error) {
		raw, err := m.store.Load(ctx, trimmed)
		if err != nil {
			return nil, err
		}
		tpl, err := prompt.Compile(m.set, raw)
		if err != nil {
			return nil, err
		}
		m.logger.Debug("template compiled", "name", trimmed)
		return tpl, nil
	})
}

// TemplateInfo describes a template previously returned by LoadTemplate:
// its name, frontmatter description and author (with placeholder defaults),
// and the variables its body references.
func (m *Manager) TemplateInfo(tpl *prompt.Template) prompt.Info {
	if tpl == nil {
		return prompt.Info{}
	}
	return prompt.Info{
		Name:        tpl.Name(),
		Description: tpl.Meta().Description(),
		Author:      tpl.Meta().Author(),
		Variables:   tpl.Variables(),
	}
}

// ClearCache drops every cached template; subsequent loads re-read the
// backing store.
func (m *Manager) ClearCache() {
	m.cache.Clear()
}

// CacheLen returns the number of templates currently cached.
func (m *Manager) CacheLen() int {
	return m.cache.Len()
}

// Client exposes the underlying PostgREST client handle. It fails with
// prompt.ErrRemoteNotConfigured when the manager resolved to local mode.
func (m *Manager) Client() (*postgrest.Client, error) {
	if m.client == nil {
		return nil, prompt.ErrRemoteNotConfigured
	}
	return m.client, nil
}

// Settings returns the settings the manager was built with.
func (m *Manager) Settings() Settings {
	return m.settings
}
