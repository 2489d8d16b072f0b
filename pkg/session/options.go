package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/keyring"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithSecret configures signing from raw secrets: the first signs new
// identifiers, the rest verify only. Length validation happens in New.
func WithSecret(signing string, unsigning ...string) Option {
	return func(m *Manager) {
		m.secrets = append([]string{signing}, unsigning...)
	}
}

// WithKeyring supplies a pre-built secret ring, typically shared with a
// rotation routine. Takes precedence over WithSecret.
func WithKeyring(ring *keyring.Ring) Option {
	return func(m *Manager) {
		m.ring = ring
	}
}

// WithStore sets a custom session store
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithCookie sets all cookie attributes at once
func WithCookie(cfg CookieConfig) Option {
	return func(m *Manager) {
		m.cookie = cfg
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.cookie.Name = name
	}
}

// WithSaveUninitialized controls whether sessions the handler never wrote
// to are persisted
func WithSaveUninitialized(save bool) Option {
	return func(m *Manager) {
		m.saveUninitialized = save
	}
}

// WithIDGenerator replaces the session id source. The default draws 32
// bytes from crypto/rand.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(m *Manager) {
		m.generateID = fn
	}
}

// WithErrorHandler replaces the handler invoked when a store failure aborts
// a request. The default responds 500.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) Option {
	return func(m *Manager) {
		m.errorHandler = fn
	}
}

// WithLogger sets the logger for debug-level negotiation events
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithCleanupInterval sets the janitor interval of the manager-owned
// default memory store. Ignored when WithStore is used.
func WithCleanupInterval(interval time.Duration) Option {
	return func(m *Manager) {
		m.cleanupInterval = interval
	}
}
