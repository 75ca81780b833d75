package catalog

// ViewAction is the sentinel action code that acts as a module's master
// switch. Every module must declare exactly one action with this code, and
// that action must not belong to a scope group.
const ViewAction = "ver_modulo"

// Action is a single permission within a module. Actions sharing the same
// non-empty Group within a module are mutually exclusive at resolution time.
type Action struct {
	// Code uniquely identifies the action within its module.
	Code string

	// Name is a human-readable label for administrative UIs.
	Name string

	// Group marks the action as part of a mutually-exclusive scope group.
	// Empty means the action is an independent toggle.
	Group string
}

// Module is a named functional area whose visibility is gated as a unit.
type Module struct {
	// Code uniquely identifies the module in the catalog.
	Code string

	// Name is a human-readable label for administrative UIs.
	Name string

	// Actions lists every action the module exposes, including the
	// ViewAction master switch.
	Actions []Action
}

// Group is a resolved view of a scope group: its name and the action codes
// that compete for the single selection slot.
type Group struct {
	Name    string
	Actions []string
}
