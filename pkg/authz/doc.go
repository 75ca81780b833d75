// Package authz resolves role-based module and action permissions, including
// mutually-exclusive scope selections, and owns the only write path into the
// grant store.
//
// The engine answers three read questions — is a module enabled, is an action
// granted, which scope action is selected — and accepts exactly three write
// intents: ToggleModule, ToggleScope, ToggleAction. Each intent commits as
// one atomic batch, so a reader never observes a half-applied toggle (for a
// scope group: never two siblings true, never a transient zero).
//
// Core rules:
//
//   - Master gate: a module whose "ver_modulo" grant is off denies every
//     action in it, regardless of stored rows
//   - Scope exclusivity: at most one action per (module, group) is selected;
//     a multi-true group resolves as "no selection" and logs a warning
//   - Fail closed: any resolution error reads as "not granted"
//   - Bypass roles: a fixed, config-time superuser allow-list resolves as
//     fully granted with zero grant store reads
//
// Basic usage:
//
//	cat, err := catalog.LoadFile("authz-catalog.yaml")
//	engine := authz.New(cat, grants.NewPostgresStore(pool),
//	    authz.WithBypassRoles("superadmin"),
//	    authz.WithLogger(log),
//	)
//
//	ok, err := engine.IsActionGranted(ctx, role, "billing", "export")
//
//	err = engine.ApplyIntent(ctx, authz.ToggleScope{
//	    Role: "cashier", Module: "billing", Group: "coverage", Action: "own_site",
//	})
//
// HTTP integration:
//
//	r.With(authz.RequireAction(engine, "billing", "export")).Get("/export", h)
//	r.Mount("/authz", authz.Router(engine))
package authz
