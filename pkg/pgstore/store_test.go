package pgstore_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/pgstore"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// newTestStore connects to the database named by TEST_POSTGRES_DSN and
// applies migrations. Tests are skipped when the variable is unset.
func newTestStore(t *testing.T) *pgstore.Store {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set, skipping postgres integration tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))
	require.NoError(t, pgstore.Migrate(ctx, pool, slog.New(slog.DiscardHandler)))

	return pgstore.New(pool)
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	rec := &session.Record{
		Data:      map[string]any{"user_id": uuid.NewString(), "count": float64(3)},
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.SetContext(ctx, id, rec))

	got, err := store.GetContext(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rec.Data, got.Data)
	assert.True(t, rec.ExpiresAt.Equal(got.ExpiresAt))

	t.Cleanup(func() { _ = store.DestroyContext(ctx, id) })
}

func TestStore_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetContext(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStore_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()
	t.Cleanup(func() { _ = store.DestroyContext(ctx, id) })

	require.NoError(t, store.SetContext(ctx, id, &session.Record{
		Data: map[string]any{"v": float64(1)},
	}))
	require.NoError(t, store.SetContext(ctx, id, &session.Record{
		Data: map[string]any{"v": float64(2)},
	}))

	got, err := store.GetContext(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, float64(2), got.Data["v"])
	assert.True(t, got.ExpiresAt.IsZero(), "upsert replaces the expiry too")
}

func TestStore_DestroyIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	require.NoError(t, store.SetContext(ctx, id, &session.Record{}))
	require.NoError(t, store.DestroyContext(ctx, id))
	require.NoError(t, store.DestroyContext(ctx, id))

	_, err := store.GetContext(ctx, id)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStore_DeleteExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	expired := uuid.NewString()
	live := uuid.NewString()
	t.Cleanup(func() {
		_ = store.DestroyContext(ctx, expired)
		_ = store.DestroyContext(ctx, live)
	})

	require.NoError(t, store.SetContext(ctx, expired, &session.Record{
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, store.SetContext(ctx, live, &session.Record{
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	n, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	_, err = store.GetContext(ctx, expired)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = store.GetContext(ctx, live)
	assert.NoError(t, err)
}

func TestStore_InvalidInput(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.SetContext(ctx, "", &session.Record{}), session.ErrInvalidRecord)
	assert.ErrorIs(t, store.SetContext(ctx, uuid.NewString(), nil), session.ErrInvalidRecord)
}
