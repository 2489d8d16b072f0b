package pgstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Store persists session records in a PostgreSQL table with a jsonb payload
// column. It implements session.ContextStore, so store I/O observes request
// cancellation.
//
// The schema is created by Migrate; see migrations/.
type Store struct {
	pool *pgxpool.Pool
}

var _ session.ContextStore = (*Store)(nil)

// New creates a PostgreSQL-backed session store on an established pool. The
// pool's lifecycle stays with the caller.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// GetContext retrieves the record for the id, or session.ErrNotFound.
func (s *Store) GetContext(ctx context.Context, id string) (*session.Record, error) {
	var (
		rec       session.Record
		expiresAt *time.Time
	)

	err := s.pool.QueryRow(ctx,
		`SELECT data, expires_at FROM sessions WHERE id = $1`, id,
	).Scan(&rec.Data, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	if expiresAt != nil {
		rec.ExpiresAt = *expiresAt
	}

	return &rec, nil
}

// SetContext upserts the record under the id.
func (s *Store) SetContext(ctx context.Context, id string, rec *session.Record) error {
	if id == "" || rec == nil {
		return session.ErrInvalidRecord
	}

	// NULL expires_at marks records without server-side expiry.
	var expiresAt *time.Time
	if !rec.ExpiresAt.IsZero() {
		expiresAt = &rec.ExpiresAt
	}

	data := rec.Data
	if data == nil {
		data = map[string]any{}
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (id, data, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE
		 SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at, updated_at = now()`,
		id, data, expiresAt,
	)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	return nil
}

// DestroyContext removes the record for the id. Absent ids are a no-op.
func (s *Store) DestroyContext(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Get satisfies the plain form of the store contract.
func (s *Store) Get(id string) (*session.Record, error) {
	return s.GetContext(context.Background(), id)
}

// Set satisfies the plain form of the store contract.
func (s *Store) Set(id string, rec *session.Record) error {
	return s.SetContext(context.Background(), id, rec)
}

// Destroy satisfies the plain form of the store contract.
func (s *Store) Destroy(id string) error {
	return s.DestroyContext(context.Background(), id)
}

// DeleteExpired removes every record whose expiry has passed and returns the
// number of rows reclaimed. Run it from a periodic job; PostgreSQL has no
// native TTL.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at <= now()`)
	if err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return tag.RowsAffected(), nil
}
