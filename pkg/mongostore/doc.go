// Package mongostore provides a MongoDB-backed session store.
//
// Records live in a collection keyed by the raw session id, with the payload
// in a nested document. EnsureIndexes creates a TTL index on expires_at so
// MongoDB reaps expired records itself; records without an expiry carry no
// expires_at field and are never reaped.
//
// The store implements session.ContextStore, so store I/O observes request
// cancellation.
//
// # Usage
//
//	store, client, err := mongostore.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Disconnect(ctx)
//
//	manager, err := session.New(
//	    session.WithSecret(secret),
//	    session.WithStore(store),
//	)
package mongostore
