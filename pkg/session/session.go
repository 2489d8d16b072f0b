package session

import (
	"maps"
	"slices"
	"time"
)

// Session is the per-request session state: identifier, expiry, and an
// arbitrary key/value payload. Each instance is exclusively owned by the
// request that resolved it, so methods are not synchronized.
type Session struct {
	id        string
	signedID  string
	expiresAt time.Time
	ttl       time.Duration
	data      map[string]any
	modified  bool
	isNew     bool
}

// newSession creates a fresh, unmodified session. A positive ttl sets the
// absolute expiry; zero means the record never expires server-side.
func newSession(id string, ttl time.Duration) *Session {
	s := &Session{id: id, ttl: ttl, isNew: true}
	if ttl > 0 {
		s.expiresAt = time.Now().Add(ttl)
	}
	return s
}

// restore rebuilds a session from a stored record and the cookie value it
// arrived with.
func restore(id, signedID string, rec *Record, ttl time.Duration) *Session {
	s := &Session{id: id, signedID: signedID, expiresAt: rec.ExpiresAt, ttl: ttl}
	if len(rec.Data) > 0 {
		s.data = make(map[string]any, len(rec.Data))
		maps.Copy(s.data, rec.Data)
	}
	return s
}

// ID returns the raw session identifier.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Token returns the signed identifier carried in the cookie. For a fresh
// session it stays empty until the first persist establishes it.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.signedID
}

// ExpiresAt returns the absolute expiry. The zero time means no expiry.
func (s *Session) ExpiresAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.expiresAt
}

// IsNew reports whether the session was created during this request rather
// than restored from the store.
func (s *Session) IsNew() bool {
	return s != nil && s.isNew
}

// Modified reports whether the payload changed since the session was
// resolved.
func (s *Session) Modified() bool {
	return s != nil && s.modified
}

// expiredAt reports whether the session is expired at the given instant.
// A session is expired when now >= expiresAt.
func (s *Session) expiredAt(now time.Time) bool {
	return !s.expiresAt.IsZero() && !now.Before(s.expiresAt)
}

// Get retrieves a value from the session payload
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.data == nil {
		return nil, false
	}
	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string value from the session payload
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int value from the session payload. Numeric values
// that crossed a JSON round-trip come back as float64 and are converted.
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from the session payload
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Set stores a value in the session payload and marks the session modified
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.data == nil {
		s.data = make(map[string]any)
	}
	s.data[key] = value
	s.modified = true
}

// Delete removes a value from the session payload and marks the session
// modified
func (s *Session) Delete(key string) {
	if s == nil || s.data == nil {
		return
	}
	delete(s.data, key)
	s.modified = true
}

// Clear removes all payload data and marks the session modified
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.data = nil
	s.modified = true
}

// Keys returns the payload keys in sorted order.
func (s *Session) Keys() []string {
	if s == nil || len(s.data) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(s.data))
}

// Len returns the number of payload entries.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Touch extends the expiry by the configured lifetime and marks the session
// modified so it persists. Rolling expiry is opt-in per request; without
// Touch the expiry fixed at creation stands.
func (s *Session) Touch() {
	if s == nil {
		return
	}
	if s.ttl > 0 {
		s.expiresAt = time.Now().Add(s.ttl)
	}
	s.modified = true
}

// record snapshots the session payload for persistence.
func (s *Session) record() *Record {
	rec := &Record{ExpiresAt: s.expiresAt}
	if len(s.data) > 0 {
		rec.Data = make(map[string]any, len(s.data))
		maps.Copy(rec.Data, s.data)
	}
	return rec
}
