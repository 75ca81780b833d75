package authz

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/authzkit/pkg/grants"
)

// RequireAction gates an HTTP subtree behind a single (module, action) check.
// The caller's role must have been attached to the request context by the
// identity layer. Every failure path denies: missing role, store faults, and
// catalog misses all translate to an error status, never to access.
func RequireAction(e *Engine, module, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				http.Error(w, ErrRoleNotInContext.Error(), http.StatusUnauthorized)
				return
			}

			granted, err := e.IsActionGranted(r.Context(), role, module, action)
			switch {
			case errors.Is(err, grants.ErrStoreUnavailable):
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			case err != nil:
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			case !granted:
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
