package prompts

import (
	"log/slog"

	"github.com/promptpack/go-prompts/pkg/prompt"
)

// Option configures a Manager before construction.
type Option func(*managerOptions)

type managerOptions struct {
	settings  *Settings
	logger    *slog.Logger
	store     prompt.Store
	cacheSize int
	noCache   bool
	globals   map[string]any
}

// WithSettings supplies settings directly instead of resolving them from the
// environment.
func WithSettings(settings Settings) Option {
	return func(o *managerOptions) {
		o.settings = &settings
	}
}

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *managerOptions) {
		o.logger = logger
	}
}

// WithStore overrides backend selection with a custom template store.
func WithStore(s prompt.Store) Option {
	return func(o *managerOptions) {
		o.store = s
	}
}

// WithCacheSize overrides the configured cache capacity.
func WithCacheSize(size int) Option {
	return func(o *managerOptions) {
		if size > 0 {
			o.cacheSize = size
		}
	}
}

// WithoutCache disables template caching regardless of settings; every load
// goes straight to the store.
func WithoutCache() Option {
	return func(o *managerOptions) {
		o.noCache = true
	}
}

// WithGlobals seeds values available to every template. Globals count as
// declared under strict rendering.
func WithGlobals(globals map[string]any) Option {
	return func(o *managerOptions) {
		if len(globals) == 0 {
			return
		}
		if o.globals == nil {
			o.globals = make(map[string]any, len(globals))
		}
		for key, value := range globals {
			o.globals[key] = value
		}
	}
}
