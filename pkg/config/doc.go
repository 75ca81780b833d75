// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - A .env file in the working directory is loaded once per process.
//   - Environment variables are parsed into any Go struct via `env` tags.
//   - Each configuration type is parsed at most once and cached, so every
//     component sharing a config type observes identical settings.
//
// Usage:
//
//	type EngineConfig struct {
//	    CatalogPath string        `env:"AUTHZ_CATALOG_PATH,required"`
//	    CacheTTL    time.Duration `env:"AUTHZ_CACHE_TTL" envDefault:"30s"`
//	}
//
//	cfg, err := config.Load[EngineConfig]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad panics on failure, for configuration the process cannot start
// without. Failures can be inspected with errors.Is(err, ErrParsingConfig).
package config
