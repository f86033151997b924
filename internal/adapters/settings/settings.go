// Package settings reads process-level options from the environment.
package settings

import (
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/packsmith/internal/core/domain"
)

// Settings are process-level options read from PACKSMITH_* environment variables.
type Settings struct {
	APIKey         string        `env:"PACKSMITH_API_KEY"`
	CatalogURL     string        `env:"PACKSMITH_CATALOG_URL"     envDefault:"https://api.curse.tools/v1/cf"`
	Concurrency    int           `env:"PACKSMITH_CONCURRENCY"`
	RetryAttempts  int           `env:"PACKSMITH_RETRY_ATTEMPTS"  envDefault:"5"`
	RetryDelay     time.Duration `env:"PACKSMITH_RETRY_DELAY"     envDefault:"5s"`
	RequestTimeout time.Duration `env:"PACKSMITH_REQUEST_TIMEOUT" envDefault:"30s"`
	LogFile        string        `env:"PACKSMITH_LOG_FILE"`
	CacheDir       string        `env:"PACKSMITH_CACHE_DIR"`
	Debug          bool          `env:"PACKSMITH_DEBUG"`
}

// Load reads Settings from the process environment.
func Load() (Settings, error) {
	return parseSettings(env.Options{})
}

// Parse reads Settings from the given variables only.
func Parse(environ map[string]string) (Settings, error) {
	return parseSettings(env.Options{Environment: environ})
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, domain.Because(domain.ErrSettingsParseFailed, err)
	}

	if s.Concurrency <= 0 {
		s.Concurrency = runtime.NumCPU()
	}
	if s.RetryAttempts < 0 {
		s.RetryAttempts = 0
	}
	if s.CacheDir == "" {
		s.CacheDir = domain.DefaultCatalogCachePath()
	}
	return s, nil
}
