// Package pgstore provides a PostgreSQL-backed session store.
//
// Records live in a sessions table with a jsonb payload column; the schema
// ships as embedded goose migrations applied by Migrate. PostgreSQL has no
// key TTL, so expired rows linger until DeleteExpired runs — schedule it
// periodically. The session manager never serves an expired record either
// way.
//
// The store implements session.ContextStore, so store I/O observes request
// cancellation.
//
// # Usage
//
//	store, pool, err := pgstore.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pgstore.Migrate(ctx, pool, slog.Default()); err != nil {
//	    return err
//	}
//
//	manager, err := session.New(
//	    session.WithSecret(secret),
//	    session.WithStore(store),
//	)
package pgstore
