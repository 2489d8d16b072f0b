package session

import (
	"context"
	"time"
)

// Record is the persisted form of a session: the payload plus the absolute
// expiry. A zero ExpiresAt means the record does not expire.
type Record struct {
	Data      map[string]any `json:"data,omitempty"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Store defines the interface for session persistence, keyed by the raw
// session id. Get returns ErrNotFound when no record exists; Destroy of an
// absent id is not an error. Implementations guard their own internals,
// the manager never shares a Record between requests.
type Store interface {
	// Get retrieves the record for the id, or ErrNotFound
	Get(id string) (*Record, error)

	// Set stores the record under the id, replacing any previous one
	Set(id string, rec *Record) error

	// Destroy removes the record; absent ids are a no-op
	Destroy(id string) error
}

// ContextStore is an optional interface for stores whose I/O should observe
// the request context, typically network-backed ones. A store implementing
// it is always called through the context-aware methods.
type ContextStore interface {
	Store

	// GetContext retrieves the record for the id, or ErrNotFound
	GetContext(ctx context.Context, id string) (*Record, error)

	// SetContext stores the record under the id
	SetContext(ctx context.Context, id string, rec *Record) error

	// DestroyContext removes the record; absent ids are a no-op
	DestroyContext(ctx context.Context, id string) error
}

// storeOps binds the manager to one calling convention. The capability
// check happens once at construction, never per request.
type storeOps struct {
	get     func(ctx context.Context, id string) (*Record, error)
	set     func(ctx context.Context, id string, rec *Record) error
	destroy func(ctx context.Context, id string) error
}

func bindStore(s Store) storeOps {
	if cs, ok := s.(ContextStore); ok {
		return storeOps{
			get:     cs.GetContext,
			set:     cs.SetContext,
			destroy: cs.DestroyContext,
		}
	}
	return storeOps{
		get:     func(_ context.Context, id string) (*Record, error) { return s.Get(id) },
		set:     func(_ context.Context, id string, rec *Record) error { return s.Set(id, rec) },
		destroy: func(_ context.Context, id string) error { return s.Destroy(id) },
	}
}
