// Package pg wires PostgreSQL connectivity for the grant store: pooled
// connections via pgx with startup retry, goose schema migrations routed
// through the application logger, and error classifiers for common SQLSTATE
// conditions.
//
// Typical startup sequence:
//
//	cfg, err := config.Load[pg.Config]()
//	pool, err := pg.Connect(ctx, cfg)
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    log.Error("migrations failed", "error", err)
//	    os.Exit(1)
//	}
//	store := grants.NewPostgresStore(pool)
package pg
