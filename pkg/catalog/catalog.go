package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Catalog is the immutable definition of every module and its actions.
// It is built once at startup, validated fatally, and safe for concurrent
// unbounded reads afterwards.
type Catalog struct {
	modules []Module
	actions map[string]map[string]Action // module code -> action code -> action
	groups  map[string][]Group           // module code -> groups in declaration order
}

// New builds a Catalog from module definitions and validates them.
// Validation failures indicate deploy-time misconfiguration and are meant to
// abort startup rather than surface at request time.
func New(modules []Module) (*Catalog, error) {
	c := &Catalog{
		modules: make([]Module, 0, len(modules)),
		actions: make(map[string]map[string]Action, len(modules)),
		groups:  make(map[string][]Group, len(modules)),
	}

	for _, m := range modules {
		if m.Code == "" {
			return nil, errors.Join(ErrInvalidCatalog, errors.New("module with empty code"))
		}
		if _, exists := c.actions[m.Code]; exists {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("duplicate module %q", m.Code))
		}

		idx := make(map[string]Action, len(m.Actions))
		groupOrder := make([]string, 0)
		groupActions := make(map[string][]string)

		for _, a := range m.Actions {
			if a.Code == "" {
				return nil, errors.Join(ErrInvalidCatalog,
					fmt.Errorf("module %q: action with empty code", m.Code))
			}
			if _, exists := idx[a.Code]; exists {
				return nil, errors.Join(ErrInvalidCatalog,
					fmt.Errorf("module %q: duplicate action %q", m.Code, a.Code))
			}
			if a.Code == ViewAction && a.Group != "" {
				return nil, errors.Join(ErrInvalidCatalog,
					fmt.Errorf("module %q: %s must not belong to a group", m.Code, ViewAction))
			}
			idx[a.Code] = a

			if a.Group != "" {
				if _, seen := groupActions[a.Group]; !seen {
					groupOrder = append(groupOrder, a.Group)
				}
				groupActions[a.Group] = append(groupActions[a.Group], a.Code)
			}
		}

		if _, ok := idx[ViewAction]; !ok {
			return nil, errors.Join(ErrInvalidCatalog,
				fmt.Errorf("module %q: missing master switch action %q", m.Code, ViewAction))
		}

		groups := make([]Group, 0, len(groupOrder))
		for _, g := range groupOrder {
			groups = append(groups, Group{Name: g, Actions: groupActions[g]})
		}

		c.modules = append(c.modules, Module{
			Code:    m.Code,
			Name:    m.Name,
			Actions: slices.Clone(m.Actions),
		})
		c.actions[m.Code] = idx
		c.groups[m.Code] = groups
	}

	return c, nil
}

// MustNew is like New but panics on validation failure. Intended for
// catalogs defined in code where misconfiguration should prevent startup.
func MustNew(modules []Module) *Catalog {
	c, err := New(modules)
	if err != nil {
		panic(err)
	}
	return c
}

// Modules returns every module definition in declaration order.
// The returned slice must not be modified.
func (c *Catalog) Modules() []Module {
	return c.modules
}

// Actions returns the actions declared by the module in declaration order.
func (c *Catalog) Actions(module string) ([]Action, error) {
	for _, m := range c.modules {
		if m.Code == module {
			return m.Actions, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModule, module)
}

// Lookup resolves a single (module, action) pair.
func (c *Catalog) Lookup(module, action string) (Action, error) {
	idx, ok := c.actions[module]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownModule, module)
	}
	a, ok := idx[action]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q in module %q", ErrUnknownAction, action, module)
	}
	return a, nil
}

// Groups returns the scope groups of a module in declaration order.
func (c *Catalog) Groups(module string) ([]Group, error) {
	groups, ok := c.groups[module]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, module)
	}
	return groups, nil
}

// Group returns the action codes competing within one scope group.
func (c *Catalog) Group(module, group string) ([]string, error) {
	groups, ok := c.groups[module]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, module)
	}
	for _, g := range groups {
		if g.Name == group {
			return g.Actions, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in module %q", ErrUnknownGroup, group, module)
}
