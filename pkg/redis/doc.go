// Package redis provides Redis connectivity for the shared grant-set cache:
// a retrying client factory driven by env configuration and a healthcheck
// closure for readiness probes.
//
//	cfg, err := config.Load[redis.Config]()
//	client, err := redis.Connect(ctx, cfg)
//	cache := grants.NewRedisCache(client, 30*time.Second)
package redis
