// Package catalog holds the immutable definition of every gated module and
// the actions each module exposes, including mutually-exclusive scope groups.
//
// The catalog is reference data: it is seeded at deploy time (from a YAML
// file or in code), validated once, and never mutated at runtime. Grant state
// lives elsewhere; this package only answers "what exists".
//
// Key concepts:
//
//   - Module: a named functional area gated as a unit
//   - Action: a permission within a module, identified by (module, code)
//   - Scope group: actions sharing a module-local group label; at most one
//     of them is meant to be granted at a time
//   - ViewAction: the per-module master switch action ("ver_modulo")
//
// Basic usage:
//
//	cat, err := catalog.LoadFile("authz-catalog.yaml")
//	if err != nil {
//	    log.Fatal(err) // misconfiguration is fatal at startup
//	}
//
//	for _, m := range cat.Modules() {
//	    groups, _ := cat.Groups(m.Code)
//	    // render admin UI toggles...
//	}
package catalog
