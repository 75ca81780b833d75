package authz

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/authzkit/pkg/catalog"
	"github.com/dmitrymomot/authzkit/pkg/grants"
)

// Router exposes the engine as a minimal RPC surface for deployments that
// run it as a standalone service. Role, module, action, and group identifiers
// travel as opaque path segments.
//
//	GET  /roles/{role}                                    full resolved snapshot
//	GET  /roles/{role}/modules/{module}                   master switch state
//	GET  /roles/{role}/modules/{module}/actions/{action}  single action check
//	GET  /roles/{role}/modules/{module}/groups/{group}    scope selection
//	POST /roles/{role}/intents                            apply one toggle intent
//
// Mount it behind the host application's own authentication and admin gating;
// the router itself does not authenticate.
func Router(e *Engine) chi.Router {
	r := chi.NewRouter()

	r.Get("/roles/{role}", func(w http.ResponseWriter, req *http.Request) {
		views, err := e.Resolve(req.Context(), chi.URLParam(req, "role"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, views)
	})

	r.Get("/roles/{role}/modules/{module}", func(w http.ResponseWriter, req *http.Request) {
		enabled, err := e.IsModuleEnabled(req.Context(),
			chi.URLParam(req, "role"), chi.URLParam(req, "module"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"enabled": enabled})
	})

	r.Get("/roles/{role}/modules/{module}/actions/{action}", func(w http.ResponseWriter, req *http.Request) {
		granted, err := e.IsActionGranted(req.Context(),
			chi.URLParam(req, "role"), chi.URLParam(req, "module"), chi.URLParam(req, "action"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"granted": granted})
	})

	r.Get("/roles/{role}/modules/{module}/groups/{group}", func(w http.ResponseWriter, req *http.Request) {
		selected, err := e.GetScopeSelection(req.Context(),
			chi.URLParam(req, "role"), chi.URLParam(req, "module"), chi.URLParam(req, "group"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"selected": selected})
	})

	r.Post("/roles/{role}/intents", func(w http.ResponseWriter, req *http.Request) {
		intent, err := decodeIntent(req, chi.URLParam(req, "role"))
		if err != nil {
			writeError(w, err)
			return
		}
		if err := e.ApplyIntent(req.Context(), intent); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

// intentRequest is the wire form of the three toggle intents.
type intentRequest struct {
	Type    string `json:"type"` // toggle_module | toggle_scope | toggle_action
	Module  string `json:"module"`
	Group   string `json:"group,omitempty"`
	Action  string `json:"action,omitempty"`
	Enabled bool   `json:"enabled,omitempty"`
	Granted bool   `json:"granted,omitempty"`
}

func decodeIntent(req *http.Request, role string) (Intent, error) {
	var body intentRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	switch body.Type {
	case "toggle_module":
		return ToggleModule{Role: role, Module: body.Module, Enabled: body.Enabled}, nil
	case "toggle_scope":
		return ToggleScope{Role: role, Module: body.Module, Group: body.Group, Action: body.Action}, nil
	case "toggle_action":
		return ToggleAction{Role: role, Module: body.Module, Action: body.Action, Granted: body.Granted}, nil
	default:
		return nil, fmt.Errorf("%w: unknown intent type %q", ErrInvalidOperation, body.Type)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrUnknownModule),
		errors.Is(err, catalog.ErrUnknownAction),
		errors.Is(err, catalog.ErrUnknownGroup):
		status = http.StatusNotFound
	case errors.Is(err, ErrInvalidOperation),
		errors.Is(err, ErrInvalidAction),
		errors.Is(err, ErrBypassRoleImmutable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, grants.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
