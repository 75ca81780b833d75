package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	loadEnvOnce sync.Once

	cacheMu sync.RWMutex
	cache   = make(map[string]any)
)

// Load parses environment variables into a configuration struct of type T
// based on `env` field tags. A .env file in the working directory is loaded
// once per process if present. Each configuration type is parsed only once;
// subsequent calls return the cached value, so every component sharing a
// config type sees identical settings.
//
// Example:
//
//	type EngineConfig struct {
//	    CatalogPath string        `env:"AUTHZ_CATALOG_PATH,required"`
//	    CacheTTL    time.Duration `env:"AUTHZ_CACHE_TTL" envDefault:"30s"`
//	}
//
//	cfg, err := config.Load[EngineConfig]()
func Load[T any]() (T, error) {
	loadEnvOnce.Do(func() {
		// The .env file is a development convenience; its absence is fine.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	cacheMu.RLock()
	if cached, ok := cache[key]; ok {
		cacheMu.RUnlock()
		return cached.(T), nil
	}
	cacheMu.RUnlock()

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached, ok := cache[key]; ok {
		// Another goroutine won the parse; use its result for consistency.
		return cached.(T), nil
	}
	cache[key] = cfg
	return cfg, nil
}

// MustLoad works like Load but panics if loading fails. For configurations
// the application cannot start without.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// typeName returns a stable string identifier for the generic type T.
func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
