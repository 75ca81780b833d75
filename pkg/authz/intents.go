package authz

import (
	"fmt"

	"github.com/dmitrymomot/authzkit/pkg/catalog"
	"github.com/dmitrymomot/authzkit/pkg/grants"
)

// Intent is one user-facing toggle, applied by the engine as a single atomic
// write batch. The plan method is unexported on purpose: the three intent
// types below are the whole write protocol, and business code cannot smuggle
// arbitrary writes past the engine's validation.
type Intent interface {
	// plan validates the intent against the catalog and expands it into the
	// role and write batch to commit.
	plan(cat *catalog.Catalog) (role string, writes []grants.Write, err error)
}

// ToggleModule flips a module's master switch for a role.
//
// Enabling only sets the master switch; previously configured action grants
// become reachable again, they are not re-granted. Disabling likewise clears
// only the master switch, so re-enabling restores the prior fine-grained
// configuration.
type ToggleModule struct {
	Role    string
	Module  string
	Enabled bool
}

func (i ToggleModule) plan(cat *catalog.Catalog) (string, []grants.Write, error) {
	if _, err := cat.Lookup(i.Module, catalog.ViewAction); err != nil {
		return "", nil, err
	}
	return i.Role, []grants.Write{{
		Key:     grants.Key{Module: i.Module, Action: catalog.ViewAction},
		Granted: i.Enabled,
	}}, nil
}

// ToggleScope selects one action within a mutually-exclusive scope group,
// clearing every sibling in the same batch. No reader ever observes two
// siblings true, because the batch commits atomically.
type ToggleScope struct {
	Role   string
	Module string
	Group  string
	Action string
}

func (i ToggleScope) plan(cat *catalog.Catalog) (string, []grants.Write, error) {
	siblings, err := cat.Group(i.Module, i.Group)
	if err != nil {
		return "", nil, err
	}

	found := false
	writes := make([]grants.Write, 0, len(siblings))
	for _, sibling := range siblings {
		selected := sibling == i.Action
		found = found || selected
		writes = append(writes, grants.Write{
			Key:     grants.Key{Module: i.Module, Action: sibling},
			Granted: selected,
		})
	}
	if !found {
		return "", nil, fmt.Errorf("%w: %q is not part of group %q in module %q",
			ErrInvalidAction, i.Action, i.Group, i.Module)
	}

	return i.Role, writes, nil
}

// ToggleAction flips a single ungrouped action. The module master switch and
// grouped actions are rejected; they have dedicated intents.
type ToggleAction struct {
	Role    string
	Module  string
	Action  string
	Granted bool
}

func (i ToggleAction) plan(cat *catalog.Catalog) (string, []grants.Write, error) {
	a, err := cat.Lookup(i.Module, i.Action)
	if err != nil {
		return "", nil, err
	}
	if a.Code == catalog.ViewAction {
		return "", nil, fmt.Errorf("%w: use ToggleModule for %q", ErrInvalidOperation, catalog.ViewAction)
	}
	if a.Group != "" {
		return "", nil, fmt.Errorf("%w: action %q belongs to group %q, use ToggleScope",
			ErrInvalidOperation, a.Code, a.Group)
	}

	return i.Role, []grants.Write{{
		Key:     grants.Key{Module: i.Module, Action: i.Action},
		Granted: i.Granted,
	}}, nil
}
