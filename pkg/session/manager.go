package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/keyring"
	"github.com/dmitrymomot/sessionkit/pkg/signer"
)

// ErrorHandler takes over the response when a store failure aborts a
// request. No cookie has been set when it runs.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Manager negotiates sessions for HTTP requests: it resolves the session
// before handler logic runs and persists it before the response is sent.
type Manager struct {
	ring              *keyring.Ring
	secrets           []string
	store             Store
	ops               storeOps
	cookie            CookieConfig
	saveUninitialized bool
	cleanupInterval   time.Duration
	generateID        func() (string, error)
	errorHandler      ErrorHandler
	logger            *slog.Logger
	ownedStore        *MemoryStore
}

// New creates a session manager with the given options. A signing secret
// (WithSecret or WithKeyring) is required; everything else has defaults:
// an in-process memory store, the cookie attributes of DefaultConfig, and
// a crypto/rand id generator.
func New(opts ...Option) (*Manager, error) {
	cfg := DefaultConfig()
	m := &Manager{
		cookie:            cfg.cookieConfig(),
		saveUninitialized: cfg.SaveUninitialized,
		cleanupInterval:   cfg.CleanupInterval,
		generateID:        generateID,
		errorHandler:      defaultErrorHandler,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.ring == nil {
		if len(m.secrets) == 0 {
			return nil, ErrNoSecret
		}
		ring, err := keyring.New(m.secrets[0], m.secrets[1:]...)
		if err != nil {
			return nil, err
		}
		m.ring = ring
	}

	// Each manager owns its default store; nothing is shared process-wide.
	if m.store == nil {
		m.ownedStore = NewMemoryStore(m.cleanupInterval)
		m.store = m.ownedStore
	}

	// Calling convention is fixed here, never re-checked per request.
	m.ops = bindStore(m.store)

	return m, nil
}

// resolve determines the active session for the request: restore a live one
// from the cookie and store, or mint a fresh replacement. Only store I/O
// failures are errors; a missing, forged, or expired session yields a fresh
// session.
func (m *Manager) resolve(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cookie.Name)
	if err != nil || cookie.Value == "" {
		return m.fresh()
	}

	id, ok := signer.Unsign(cookie.Value, m.ring.Secrets()...)
	if !ok {
		m.logger.DebugContext(r.Context(), "session cookie failed verification",
			slog.String("cookie", m.cookie.Name))
		return m.fresh()
	}

	rec, err := m.ops.get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return m.fresh()
		}
		return nil, err
	}

	sess := restore(id, cookie.Value, rec, m.cookie.MaxAge)
	if sess.expiredAt(time.Now()) {
		if err := m.ops.destroy(r.Context(), id); err != nil {
			return nil, err
		}
		m.logger.DebugContext(r.Context(), "expired session replaced",
			slog.String("session_id", id))
		return m.fresh()
	}

	return sess, nil
}

// fresh mints a new unmodified session with a random id. The signed id is
// established at persist time.
func (m *Manager) fresh() (*Session, error) {
	id, err := m.generateID()
	if err != nil {
		return nil, err
	}
	return newSession(id, m.cookie.MaxAge), nil
}

// persist saves the session and re-issues the cookie. It runs once per
// request, before the first response byte. The id is re-signed with the
// current signing secret on every save, so rotation takes effect without
// invalidating live sessions.
func (m *Manager) persist(w http.ResponseWriter, r *http.Request, h *holder) error {
	sess := h.session
	if sess == nil || sess.id == "" {
		return nil
	}

	if !m.shouldSave(r, sess) {
		return nil
	}

	if err := m.ops.set(r.Context(), sess.id, sess.record()); err != nil {
		return err
	}

	sess.signedID = signer.Sign(sess.id, m.ring.Signing())
	http.SetCookie(w, m.buildCookie(sess.signedID, sess.expiresAt))
	return nil
}

// shouldSave applies the write-skip and secure-cookie policies.
func (m *Manager) shouldSave(r *http.Request, sess *Session) bool {
	if !m.saveUninitialized && !sess.modified {
		return false
	}

	if !m.cookie.Secure {
		return true
	}
	if r.TLS != nil {
		return true
	}
	if forwardedProto(r) == "https" {
		return true
	}

	m.logger.DebugContext(r.Context(), "secure cookie requires https, persist skipped",
		slog.String("session_id", sess.id))
	return false
}

// forwardedProto returns the first scheme a reverse proxy declared for the
// request, lowercased. Chained proxies append to the header, so only the
// first entry counts.
func forwardedProto(r *http.Request) string {
	proto := r.Header.Get("X-Forwarded-Proto")
	if i := strings.IndexByte(proto, ','); i >= 0 {
		proto = proto[:i]
	}
	return strings.ToLower(strings.TrimSpace(proto))
}

// Destroy removes the current session from the store and detaches it from
// the request; later FromContext calls on the same request observe no
// session. A store failure propagates and leaves the session attached.
// Without an attached session it is a no-op.
func (m *Manager) Destroy(ctx context.Context) error {
	h, ok := holderFromContext(ctx)
	if !ok || h.session == nil {
		return nil
	}

	if h.session.id != "" {
		if err := m.ops.destroy(ctx, h.session.id); err != nil {
			return err
		}
	}

	h.session = nil
	return nil
}

// Regenerate discards the current session and attaches a fresh one with a
// new id, keeping login flows safe from session fixation. The new session
// is marked modified so it persists even with SaveUninitialized disabled.
func (m *Manager) Regenerate(ctx context.Context) (*Session, error) {
	h, ok := holderFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	if h.session != nil && h.session.id != "" {
		if err := m.ops.destroy(ctx, h.session.id); err != nil {
			return nil, err
		}
	}

	sess, err := m.fresh()
	if err != nil {
		return nil, err
	}
	sess.modified = true
	h.session = sess

	return sess, nil
}

// Store returns the active store, letting applications reach past the
// negotiator for maintenance operations.
func (m *Manager) Store() Store {
	return m.store
}

// Keyring returns the secret ring so applications can rotate secrets while
// the manager serves requests.
func (m *Manager) Keyring() *keyring.Ring {
	return m.ring
}

// Close stops the janitor of the manager-owned default store. Stores
// supplied via WithStore are the caller's to close.
func (m *Manager) Close() error {
	if m.ownedStore != nil {
		return m.ownedStore.Close()
	}
	return nil
}

// defaultErrorHandler responds 500 without leaking the store error
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// generateID creates a cryptographically secure session id
func generateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
