package session

import "context"

type holderContextKey struct{}

// holder is the mutable per-request slot the middleware installs. Destroy
// and Regenerate swap the session through it, so every later FromContext
// call on the same request observes the change. The request owns its
// session exclusively, so access is not synchronized.
type holder struct {
	session *Session
}

func withHolder(ctx context.Context, h *holder) context.Context {
	return context.WithValue(ctx, holderContextKey{}, h)
}

func holderFromContext(ctx context.Context) (*holder, bool) {
	h, ok := ctx.Value(holderContextKey{}).(*holder)
	return h, ok
}

// FromContext retrieves the session attached to the request context. The
// second return is false outside the middleware's path scope and after
// Destroy.
func FromContext(ctx context.Context) (*Session, bool) {
	h, ok := holderFromContext(ctx)
	if !ok || h.session == nil {
		return nil, false
	}
	return h.session, true
}

// MustFromContext retrieves the session from the context or panics
func MustFromContext(ctx context.Context) *Session {
	sess, ok := FromContext(ctx)
	if !ok {
		panic("session: not found in context")
	}
	return sess
}
