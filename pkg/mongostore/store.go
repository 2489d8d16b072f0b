package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Store persists session records in a MongoDB collection keyed by the raw
// session id. It implements session.ContextStore, so store I/O observes
// request cancellation.
type Store struct {
	coll *mongo.Collection
}

var _ session.ContextStore = (*Store)(nil)

// document is the stored shape. ExpiresAt is omitted for records without
// server-side expiry so the TTL index never reaps them.
type document struct {
	ID        string         `bson:"_id"`
	Data      map[string]any `bson:"data,omitempty"`
	ExpiresAt *time.Time     `bson:"expires_at,omitempty"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

// New creates a MongoDB-backed session store on the given database. The
// client's lifecycle stays with the caller.
func New(db *mongo.Database, opts ...Option) *Store {
	cfg := storeConfig{collection: "sessions"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store{coll: db.Collection(cfg.collection)}
}

// EnsureIndexes creates the TTL index on expires_at, letting MongoDB reap
// expired records on its own. Call once at startup; index creation is
// idempotent. The TTL monitor runs about once a minute, so the manager's
// own expiry check still decides what a request sees.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return errors.Join(ErrFailedToCreateIndexes, err)
	}
	return nil
}

// GetContext retrieves the record for the id, or session.ErrNotFound.
func (s *Store) GetContext(ctx context.Context, id string) (*session.Record, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, session.ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	rec := &session.Record{Data: doc.Data}
	if doc.ExpiresAt != nil {
		rec.ExpiresAt = *doc.ExpiresAt
	}

	return rec, nil
}

// SetContext upserts the record under the id.
func (s *Store) SetContext(ctx context.Context, id string, rec *session.Record) error {
	if id == "" || rec == nil {
		return session.ErrInvalidRecord
	}

	doc := document{
		ID:        id,
		Data:      rec.Data,
		UpdatedAt: time.Now().UTC(),
	}
	if !rec.ExpiresAt.IsZero() {
		expiresAt := rec.ExpiresAt.UTC()
		doc.ExpiresAt = &expiresAt
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	return nil
}

// DestroyContext removes the record for the id. Absent ids are a no-op.
func (s *Store) DestroyContext(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
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
