package authz

// ScopeSelection is the resolved state of one scope group for a role.
type ScopeSelection struct {
	// Selected is the single granted action in the group, or empty when no
	// action is granted. Callers must treat "no selection" as maximally
	// restrictive.
	Selected string `json:"selected"`

	// Inconsistent is set when more than one sibling was granted — a state
	// the write path never produces, indicating prior tampering or a legacy
	// partial write. The resolver reports no selection rather than guessing.
	Inconsistent bool `json:"inconsistent,omitempty"`
}

// ModuleView is the resolved authorization snapshot of one module for one
// role. It is derived data, never stored.
type ModuleView struct {
	// Module is the catalog module code.
	Module string `json:"module"`

	// Enabled mirrors the module's master switch grant. When false the
	// module is invisible to business callers regardless of Actions content;
	// Actions is still populated for administrative display.
	Enabled bool `json:"enabled"`

	// Actions maps every catalog action of the module to its raw grant flag.
	Actions map[string]bool `json:"actions"`

	// Scopes maps each scope group to its resolved selection.
	Scopes map[string]ScopeSelection `json:"scopes,omitempty"`
}
