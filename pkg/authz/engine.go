package authz

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authzkit/pkg/catalog"
	"github.com/dmitrymomot/authzkit/pkg/grants"
	"github.com/dmitrymomot/authzkit/pkg/logger"
)

// Engine resolves per-role authorization state and owns the only write path
// into the grant store. It is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	store   grants.Store
	bypass  map[string]struct{}
	log     *slog.Logger
}

// Option configures engine creation.
type Option func(*Engine)

// WithBypassRoles declares superuser roles that resolve as fully granted
// without ever touching the grant store. The set is fixed at construction
// time so that grant data corruption cannot mint new superusers.
func WithBypassRoles(roles ...string) Option {
	return func(e *Engine) {
		for _, r := range roles {
			if r != "" {
				e.bypass[r] = struct{}{}
			}
		}
	}
}

// WithLogger sets the logger used for inconsistency warnings and intent audit
// records. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an Engine over an immutable catalog and a grant store.
func New(cat *catalog.Catalog, store grants.Store, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		store:   store,
		bypass:  make(map[string]struct{}),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsBypass reports whether the role short-circuits resolution.
func (e *Engine) IsBypass(role string) bool {
	_, ok := e.bypass[role]
	return ok
}

// Resolve computes the full authorization snapshot for a role: one view per
// catalog module. It performs at most one grant store read; bypass roles are
// answered from the catalog alone.
func (e *Engine) Resolve(ctx context.Context, role string) ([]ModuleView, error) {
	if e.IsBypass(role) {
		return e.resolveBypass(), nil
	}

	set, err := e.store.GrantSet(ctx, role)
	if err != nil {
		return nil, err
	}

	modules := e.catalog.Modules()
	views := make([]ModuleView, 0, len(modules))
	for _, m := range modules {
		views = append(views, e.resolveModule(ctx, role, m, set))
	}
	return views, nil
}

func (e *Engine) resolveModule(ctx context.Context, role string, m catalog.Module, set grants.Set) ModuleView {
	view := ModuleView{
		Module:  m.Code,
		Enabled: set.Has(m.Code, catalog.ViewAction),
		Actions: make(map[string]bool, len(m.Actions)),
	}
	for _, a := range m.Actions {
		view.Actions[a.Code] = set.Has(m.Code, a.Code)
	}

	groups, _ := e.catalog.Groups(m.Code)
	if len(groups) > 0 {
		view.Scopes = make(map[string]ScopeSelection, len(groups))
		for _, g := range groups {
			view.Scopes[g.Name] = e.resolveGroup(ctx, role, m.Code, g, set)
		}
	}

	return view
}

func (e *Engine) resolveGroup(ctx context.Context, role, module string, g catalog.Group, set grants.Set) ScopeSelection {
	var granted []string
	for _, action := range g.Actions {
		if set.Has(module, action) {
			granted = append(granted, action)
		}
	}

	switch len(granted) {
	case 0:
		return ScopeSelection{}
	case 1:
		return ScopeSelection{Selected: granted[0]}
	default:
		// More than one sibling is true: the write path never does this, so
		// the data was tampered with or predates the atomic-intent protocol.
		// Report "no selection" rather than guessing a winner.
		e.log.WarnContext(ctx, "inconsistent scope group",
			logger.Error(ErrInconsistentScope),
			logger.Role(role),
			logger.Module(module),
			logger.Group(g.Name),
			slog.Any("granted", granted),
		)
		return ScopeSelection{Inconsistent: true}
	}
}

func (e *Engine) resolveBypass() []ModuleView {
	modules := e.catalog.Modules()
	views := make([]ModuleView, 0, len(modules))
	for _, m := range modules {
		view := ModuleView{
			Module:  m.Code,
			Enabled: true,
			Actions: make(map[string]bool, len(m.Actions)),
		}
		for _, a := range m.Actions {
			view.Actions[a.Code] = true
		}
		groups, _ := e.catalog.Groups(m.Code)
		if len(groups) > 0 {
			view.Scopes = make(map[string]ScopeSelection, len(groups))
			for _, g := range groups {
				// Scope groups are mutually exclusive even for superusers;
				// the first declared action is the deterministic pick.
				view.Scopes[g.Name] = ScopeSelection{Selected: g.Actions[0]}
			}
		}
		views = append(views, view)
	}
	return views
}

// IsModuleEnabled reports whether the module's master switch is granted.
func (e *Engine) IsModuleEnabled(ctx context.Context, role, module string) (bool, error) {
	return e.IsActionGranted(ctx, role, module, catalog.ViewAction)
}

// IsActionGranted reports whether the role may perform the action. A module
// whose master switch is off denies every action in it, whatever the stored
// grant rows say. Any resolution failure reads as "not granted".
func (e *Engine) IsActionGranted(ctx context.Context, role, module, action string) (bool, error) {
	if _, err := e.catalog.Lookup(module, action); err != nil {
		return false, err
	}
	if e.IsBypass(role) {
		return true, nil
	}

	set, err := e.store.GrantSet(ctx, role)
	if err != nil {
		return false, err
	}
	if !set.Has(module, catalog.ViewAction) {
		return false, nil
	}
	return set.Has(module, action), nil
}

// GetScopeSelection returns the single selected action of a scope group, or
// empty when none is selected or the stored state is inconsistent. Callers
// must treat empty as maximally restrictive.
func (e *Engine) GetScopeSelection(ctx context.Context, role, module, group string) (string, error) {
	siblings, err := e.catalog.Group(module, group)
	if err != nil {
		return "", err
	}
	if e.IsBypass(role) {
		return siblings[0], nil
	}

	set, err := e.store.GrantSet(ctx, role)
	if err != nil {
		return "", err
	}

	sel := e.resolveGroup(ctx, role, module, catalog.Group{Name: group, Actions: siblings}, set)
	return sel.Selected, nil
}

// ApplyIntent validates and commits one toggle intent as a single atomic
// write batch. On error nothing was applied (a failed cache invalidation
// after a durable write is the one exception; see grants.ErrCacheInvalidation)
// and callers should re-resolve rather than assume their intended state took
// effect.
func (e *Engine) ApplyIntent(ctx context.Context, intent Intent) error {
	role, writes, err := intent.plan(e.catalog)
	if err != nil {
		return err
	}
	if e.IsBypass(role) {
		return ErrBypassRoleImmutable
	}

	intentID := uuid.NewString()
	if err := e.store.Apply(ctx, role, writes); err != nil {
		e.log.ErrorContext(ctx, "intent rejected",
			logger.IntentID(intentID),
			logger.Role(role),
			slog.Int("writes", len(writes)),
			logger.Error(err),
		)
		return err
	}

	e.log.InfoContext(ctx, "intent applied",
		logger.IntentID(intentID),
		logger.Role(role),
		slog.Int("writes", len(writes)),
	)
	return nil
}
