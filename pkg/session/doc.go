// Package session negotiates signed-cookie sessions for Go web
// applications. It issues, verifies, renews, and destroys a tamper-evident
// session identifier carried in a single cookie, and delegates payload
// persistence to a pluggable store.
//
// Only the identifier is protected: it is signed with HMAC-SHA256 and
// verified against a rotating secret ring, so old cookies keep working
// through a rotation until their secret is retired. The payload itself is
// trusted store-side and never leaves the server.
//
// # Architecture
//
// A Manager orchestrates the per-request lifecycle. Its middleware runs the
// resolve phase before the wrapped handler (read cookie, verify signature,
// load from store, replace expired or unknown sessions with fresh ones) and
// the persist phase before the first response byte (decide whether to save,
// write the record, re-sign the id with the current signing secret, set the
// cookie).
//
//	┌────────┐  signed cookie  ┌─────────────────┐
//	│ Client │ ──────────────► │     Manager     │
//	└────────┘                 │ resolve/persist │
//	       ▲                   └─────────────────┘
//	       │   Set-Cookie         │           │
//	       └──────────────────────┘           ▼
//	                                   ┌─────────────┐
//	                                   │    Store    │ (memory, redis,
//	                                   └─────────────┘  postgres, mongo)
//
// Stores come in two calling conventions: the plain Store interface and the
// request-context-aware ContextStore. The manager detects which one the
// configured store implements once at construction and uses that form for
// every call.
//
// # Usage
//
//	manager, err := session.New(
//	    session.WithSecret("your-signing-secret-at-least-32-chars"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer manager.Close()
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
//	    sess, _ := session.FromContext(r.Context())
//	    sess.Set("views", 1)
//	})
//	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
//	    _ = manager.Destroy(r.Context())
//	})
//
//	http.ListenAndServe(":8080", manager.Middleware(mux))
//
// Twelve-factor deployments can populate Config from the environment and
// build the manager with NewFromConfig; secret rotation goes through
// Manager.Keyring.
//
// # Error Handling
//
// Validation failures are not errors: a missing cookie, a forged or
// unverifiable signature, and an expired session all yield a fresh session.
// Store I/O failures abort the request through the configured ErrorHandler
// (default: plain 500) and never set a partial cookie. Common sentinels:
//
//   - ErrNoSecret  - New called without a signing secret or keyring
//   - ErrNotFound  - store sentinel for "no record"; mapped to a fresh
//     session, never surfaced to handlers
//
// # Concurrency
//
// A session instance belongs to exactly one request; the package adds no
// cross-request locking, and concurrent requests for the same session id
// are last-write-wins in the store. Store calls carry no deadline of their
// own: a hung store stalls that request, so wrap stores with caller-imposed
// timeouts where that matters.
package session
