package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/keyring"
)

// Config holds negotiator configuration
type Config struct {
	// Secrets is a comma-separated rotation list; the first entry signs,
	// the rest verify only
	Secrets string `env:"SESSION_SECRETS"`

	// CookieName is the name of the session cookie (default: "sessionId")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sessionId"`

	CookiePath   string `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	CookieDomain string `env:"SESSION_COOKIE_DOMAIN"`

	// MaxAge bounds the session lifetime; zero issues browser-session
	// cookies and records without server-side expiry
	MaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"0"`

	// Secure restricts persistence to encrypted connections; disable only
	// for local development
	Secure bool `env:"SESSION_COOKIE_SECURE" envDefault:"true"`

	HTTPOnly bool `env:"SESSION_COOKIE_HTTP_ONLY" envDefault:"true"`

	// SameSite is one of "lax", "strict", "none", "default"
	SameSite string `env:"SESSION_COOKIE_SAME_SITE" envDefault:"lax"`

	// SaveUninitialized persists sessions even when the handler never
	// wrote to them
	SaveUninitialized bool `env:"SESSION_SAVE_UNINITIALIZED" envDefault:"true"`

	// CleanupInterval for the default memory store's janitor (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns default negotiator configuration
func DefaultConfig() Config {
	return Config{
		CookieName:        "sessionId",
		CookiePath:        "/",
		Secure:            true,
		HTTPOnly:          true,
		SameSite:          "lax",
		SaveUninitialized: true,
		CleanupInterval:   5 * time.Minute,
	}
}

// cookieConfig translates the flat env fields into cookie attributes
func (c Config) cookieConfig() CookieConfig {
	return CookieConfig{
		Name:     c.CookieName,
		Path:     c.CookiePath,
		Domain:   c.CookieDomain,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
		SameSite: parseSameSite(c.SameSite),
	}
}

// parseSameSite maps a config token to the net/http SameSite mode,
// defaulting to Lax for unknown values.
func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "default":
		return http.SameSiteDefaultMode
	default:
		return http.SameSiteLaxMode
	}
}

// NewFromConfig creates a Manager from the provided Config. Additional
// options are applied after the config and may override it.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	base := []Option{
		WithCookie(cfg.cookieConfig()),
		WithSaveUninitialized(cfg.SaveUninitialized),
		WithCleanupInterval(cfg.CleanupInterval),
	}

	if cfg.Secrets != "" {
		ring, err := keyring.NewFromConfig(keyring.Config{Secrets: cfg.Secrets})
		if err != nil {
			return nil, err
		}
		base = append(base, WithKeyring(ring))
	}

	return New(append(base, opts...)...)
}
