package prompts

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// SettingsFile is the optional dotenv file loaded before reading the
// environment.
const SettingsFile = ".prompting_env"

// Settings configures the manager. All fields resolve from the environment;
// remote mode engages only when both SupabaseURL and SupabaseKey are present
// and ForceLocal is off.
type Settings struct {
	// SupabaseURL is the project endpoint for the remote template table.
	SupabaseURL string `env:"SUPABASE_URL"`
	// SupabaseKey is the access key sent with every remote query.
	SupabaseKey string `env:"SUPABASE_KEY"`
	// TemplatePath is the directory local *.j2 templates are read from.
	TemplatePath string `env:"TEMPLATE_PATH" envDefault:"prompts/templates"`
	// CacheEnabled toggles the compiled-template cache.
	CacheEnabled bool `env:"PROMPT_CACHE" envDefault:"true"`
	// CacheSize bounds the cache; least recently used entries are evicted.
	CacheSize int `env:"PROMPT_CACHE_SIZE" envDefault:"32"`
	// ForceLocal pins the manager to the local store even when remote
	// credentials are configured.
	ForceLocal bool `env:"PROMPT_FORCE_LOCAL" envDefault:"false"`
}

// LoadSettings reads SettingsFile when present, then resolves Settings from
// the environment.
func LoadSettings() (Settings, error) {
	if _, err := os.Stat(SettingsFile); err == nil {
		_ = godotenv.Load(SettingsFile)
	}

	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("prompts: parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks field constraints that env parsing cannot express.
func (s Settings) Validate() error {
	if s.TemplatePath == "" && !s.Remote() {
		return fmt.Errorf("prompts: TEMPLATE_PATH is required in local mode")
	}
	if s.CacheEnabled && s.CacheSize <= 0 {
		return fmt.Errorf("prompts: PROMPT_CACHE_SIZE must be positive")
	}
	return nil
}

// Remote reports whether the manager should read templates from the remote
// table.
func (s Settings) Remote() bool {
	return !s.ForceLocal && s.SupabaseURL != "" && s.SupabaseKey != ""
}
