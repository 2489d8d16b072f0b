package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Store persists session records in Redis as JSON values with a TTL derived
// from the record's expiry. It implements session.ContextStore, so the
// session manager routes every call through the context-aware methods and
// request cancellation reaches the Redis client.
type Store struct {
	client redis.UniversalClient
	prefix string
}

var _ session.ContextStore = (*Store)(nil)

// New creates a Redis-backed session store on an established client. The
// client's lifecycle stays with the caller.
func New(client redis.UniversalClient, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: "session:",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetContext retrieves the record for the id, or session.ErrNotFound.
func (s *Store) GetContext(ctx context.Context, id string) (*session.Record, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var rec session.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Join(ErrFailedToDecodeRecord, err)
	}

	return &rec, nil
}

// SetContext stores the record under the id. Records with an absolute expiry
// get a matching Redis TTL; already-expired records are removed instead of
// written.
func (s *Store) SetContext(ctx context.Context, id string, rec *session.Record) error {
	if id == "" || rec == nil {
		return session.ErrInvalidRecord
	}

	var ttl time.Duration
	if !rec.ExpiresAt.IsZero() {
		ttl = time.Until(rec.ExpiresAt)
		if ttl <= 0 {
			return s.DestroyContext(ctx, id)
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Join(ErrFailedToEncodeRecord, err)
	}

	if err := s.client.Set(ctx, s.key(id), data, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	return nil
}

// DestroyContext removes the record for the id. Absent ids are a no-op.
func (s *Store) DestroyContext(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
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

func (s *Store) key(id string) string {
	return s.prefix + id
}
