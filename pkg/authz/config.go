package authz

import "time"

// Config carries the engine settings loaded from the environment.
//
// Example wiring:
//
//	cfg, err := config.Load[authz.Config]()
//	cat, err := catalog.LoadFile(cfg.CatalogPath)
//	store := grants.NewCachedStore(
//	    grants.NewPostgresStore(pool),
//	    grants.NewLRUCache(cfg.CacheSize, cfg.CacheTTL),
//	)
//	engine := authz.New(cat, store, authz.WithBypassRoles(cfg.BypassRoles...))
type Config struct {
	// CatalogPath points at the YAML catalog definition loaded at boot.
	CatalogPath string `env:"AUTHZ_CATALOG_PATH,required"`

	// BypassRoles lists superuser roles that skip grant resolution entirely.
	// Deliberately environment-driven rather than database-driven so grant
	// data corruption cannot escalate privileges.
	BypassRoles []string `env:"AUTHZ_BYPASS_ROLES" envSeparator:","`

	// CacheTTL bounds the staleness of cached grant sets.
	CacheTTL time.Duration `env:"AUTHZ_CACHE_TTL" envDefault:"30s"`

	// CacheSize caps the number of roles held by the in-process cache.
	CacheSize int `env:"AUTHZ_CACHE_SIZE" envDefault:"1024"`
}
