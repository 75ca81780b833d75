package authz

import "errors"

// Domain errors for authorization resolution and the intent write path.
var (
	// ErrInvalidOperation is returned when ToggleAction targets the module
	// master switch or a grouped action; those go through ToggleModule and
	// ToggleScope respectively.
	ErrInvalidOperation = errors.New("authz.invalid_operation")

	// ErrInvalidAction is returned when ToggleScope names an action that does
	// not belong to the given (module, group).
	ErrInvalidAction = errors.New("authz.invalid_action")

	// ErrInconsistentScope marks a scope group with more than one true
	// sibling. The resolver reports "no selection" for such a group; the
	// error value exists for observability and diagnostics, not control flow.
	ErrInconsistentScope = errors.New("authz.inconsistent_scope")

	// ErrBypassRoleImmutable is returned when an intent targets a bypass
	// role. Bypass roles are never represented in the grant store.
	ErrBypassRoleImmutable = errors.New("authz.bypass_role_immutable")

	// ErrRoleNotInContext is returned by the HTTP middleware when no caller
	// role was attached to the request context.
	ErrRoleNotInContext = errors.New("authz.role_not_in_context")
)
