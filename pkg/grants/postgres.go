package grants

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresStore persists grants in the role_grants table (see migrations/).
// Each Apply runs inside a single transaction guarded by a per-role advisory
// lock, so concurrent intents for the same role serialize cleanly while
// intents for different roles proceed in parallel.
type postgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a Store backed by a pgx connection pool.
func NewPostgresStore(db *pgxpool.Pool) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) GrantSet(ctx context.Context, role string) (Set, error) {
	rows, err := s.db.Query(ctx,
		`SELECT module, action FROM role_grants WHERE role = $1 AND granted`, role)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	defer rows.Close()

	set := make(Set)
	for rows.Next() {
		var module, action string
		if err := rows.Scan(&module, &action); err != nil {
			return nil, errors.Join(ErrStoreUnavailable, err)
		}
		set.Add(module, action)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	return set, nil
}

func (s *postgresStore) Apply(ctx context.Context, role string, writes []Write) error {
	if len(writes) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	// Transaction-scoped advisory lock keyed by role. Released automatically
	// on commit or rollback, so a crashed writer never wedges the role.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, role); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	batch := &pgx.Batch{}
	for _, w := range writes {
		batch.Queue(`
			INSERT INTO role_grants (role, module, action, granted)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (role, module, action)
			DO UPDATE SET granted = EXCLUDED.granted, updated_at = now()`,
			role, w.Module, w.Action, w.Granted)
	}

	br := tx.SendBatch(ctx, batch)
	for range writes {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return errors.Join(ErrStoreUnavailable, err)
		}
	}
	if err := br.Close(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	return nil
}
