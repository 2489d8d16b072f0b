package mongostore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/sessionkit/pkg/mongostore"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// newTestStore connects to the deployment named by TEST_MONGO_URI. Tests are
// skipped when the variable is unset.
func newTestStore(t *testing.T) *mongostore.Store {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping mongo integration tests")
	}

	ctx := context.Background()
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	require.NoError(t, client.Ping(ctx, nil))

	store := mongostore.New(client.Database("sessionkit_test"))
	require.NoError(t, store.EnsureIndexes(ctx))
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()
	t.Cleanup(func() { _ = store.DestroyContext(ctx, id) })

	rec := &session.Record{
		Data:      map[string]any{"user_id": uuid.NewString(), "count": int32(3)},
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.SetContext(ctx, id, rec))

	got, err := store.GetContext(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rec.Data["user_id"], got.Data["user_id"])
	assert.True(t, rec.ExpiresAt.Equal(got.ExpiresAt))
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
		Data:      map[string]any{"v": "first"},
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, store.SetContext(ctx, id, &session.Record{
		Data: map[string]any{"v": "second"},
	}))

	got, err := store.GetContext(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Data["v"])
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

func TestStore_InvalidInput(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.SetContext(ctx, "", &session.Record{}), session.ErrInvalidRecord)
	assert.ErrorIs(t, store.SetContext(ctx, uuid.NewString(), nil), session.ErrInvalidRecord)
}
