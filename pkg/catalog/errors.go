package catalog

import "errors"

// Domain errors for catalog lookups and validation.
var (
	// ErrUnknownModule is returned when a module code is not in the catalog.
	ErrUnknownModule = errors.New("catalog.unknown_module")

	// ErrUnknownAction is returned when an action code is not declared by the module.
	ErrUnknownAction = errors.New("catalog.unknown_action")

	// ErrUnknownGroup is returned when a scope group is not declared by the module.
	ErrUnknownGroup = errors.New("catalog.unknown_group")

	// ErrInvalidCatalog is returned when the catalog definition fails validation.
	ErrInvalidCatalog = errors.New("catalog.invalid_definition")
)
