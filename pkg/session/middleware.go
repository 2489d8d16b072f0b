package session

import (
	"net/http"
)

// Middleware resolves the session before the wrapped handler runs and
// persists it before the first response byte leaves. Requests outside the
// cookie path scope pass through untouched, with no session in context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !pathMatch(r.URL.Path, m.cookie.Path) {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := m.resolve(r)
		if err != nil {
			m.errorHandler(w, r, err)
			return
		}

		h := &holder{session: sess}
		r = r.WithContext(withHolder(r.Context(), h))

		sw := &sessionWriter{ResponseWriter: w, manager: m, request: r, holder: h}
		next.ServeHTTP(sw, r)

		// Handlers that never write still get their session persisted.
		sw.commit()
	})
}

// sessionWriter delays the persist decision until the response starts, so
// the Set-Cookie header can still be written.
type sessionWriter struct {
	http.ResponseWriter
	manager   *Manager
	request   *http.Request
	holder    *holder
	committed bool
	failed    bool
}

func (w *sessionWriter) WriteHeader(code int) {
	w.commit()
	if w.failed {
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.commit()
	if w.failed {
		// The error handler already produced the response; drop the
		// handler's output instead of appending to it.
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

// commit persists the session exactly once. On failure the error handler
// takes over the response and later writes are dropped.
func (w *sessionWriter) commit() {
	if w.committed {
		return
	}
	w.committed = true

	if err := w.manager.persist(w.ResponseWriter, w.request, w.holder); err != nil {
		w.failed = true
		w.manager.errorHandler(w.ResponseWriter, w.request, err)
	}
}

// Flush implements http.Flusher for streaming handlers
func (w *sessionWriter) Flush() {
	w.commit()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap supports http.ResponseController
func (w *sessionWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
