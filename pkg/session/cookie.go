package session

import (
	"net/http"
	"strings"
	"time"
)

// CookieConfig controls the attributes of the emitted session cookie.
type CookieConfig struct {
	// Name of the cookie carrying the signed id (default "sessionId")
	Name string

	// Path scopes both the cookie and session resolution (default "/")
	Path string

	// Domain attribute; empty means host-only
	Domain string

	// MaxAge is the session lifetime. Zero issues a browser-session cookie
	// and a store record without server-side expiry.
	MaxAge time.Duration

	// Secure restricts persistence to encrypted connections (default true)
	Secure bool

	// HTTPOnly hides the cookie from client-side scripts (default true)
	HTTPOnly bool

	// SameSite attribute (default http.SameSiteLaxMode)
	SameSite http.SameSite
}

// buildCookie assembles the response cookie for a signed id. For sessions
// with an absolute expiry the cookie carries the remaining lifetime.
func (m *Manager) buildCookie(signed string, expiresAt time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     m.cookie.Name,
		Value:    signed,
		Path:     m.cookie.Path,
		Domain:   m.cookie.Domain,
		Secure:   m.cookie.Secure,
		HttpOnly: m.cookie.HTTPOnly,
		SameSite: m.cookie.SameSite,
	}

	if !expiresAt.IsZero() {
		c.Expires = expiresAt
		if maxAge := int(time.Until(expiresAt).Seconds()); maxAge > 0 {
			c.MaxAge = maxAge
		} else {
			c.MaxAge = -1
		}
	}

	return c
}

// pathMatch reports whether the request path falls under the cookie path
// scope, following RFC 6265 section 5.1.4.
func pathMatch(requestPath, cookiePath string) bool {
	if cookiePath == "" || cookiePath == "/" {
		return true
	}
	if requestPath == cookiePath {
		return true
	}
	if strings.HasPrefix(requestPath, cookiePath) {
		return strings.HasSuffix(cookiePath, "/") || requestPath[len(cookiePath)] == '/'
	}
	return false
}
