package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		sess, ok := session.FromContext(t.Context())
		assert.False(t, ok)
		assert.Nil(t, sess)
	})

	t.Run("within middleware", func(t *testing.T) {
		m, err := session.New(
			session.WithSecret(testSecret),
			session.WithCookie(insecureCookie("sid", 0)),
		)
		require.NoError(t, err)
		t.Cleanup(func() { _ = m.Close() })

		w := httptest.NewRecorder()
		m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromContext(r.Context())
			assert.True(t, ok)
			assert.NotNil(t, sess)
		})).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	})
}

func TestMustFromContext(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		session.MustFromContext(t.Context())
	})
}
