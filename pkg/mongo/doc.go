// Package mongo provides MongoDB connectivity for deployments backing the
// grant store with a replica set instead of PostgreSQL.
//
//	cfg, err := config.Load[mongo.Config]()
//	db, err := mongo.ConnectDatabase(ctx, cfg, "authz")
//	if err := grants.EnsureMongoIndexes(ctx, db); err != nil { ... }
//	store := grants.NewMongoStore(db)
package mongo
