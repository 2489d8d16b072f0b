// Package redisstore provides a Redis-backed session store.
//
// Records are stored as JSON values under a configurable key prefix. A
// record's absolute expiry maps onto the Redis key TTL, so expired sessions
// disappear from Redis without a janitor process; the session manager still
// performs its own expiry check, which covers clock skew between the
// application and the Redis server.
//
// The store implements session.ContextStore, so store I/O observes request
// cancellation.
//
// # Usage
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	store := redisstore.New(client)
//
//	manager, err := session.New(
//	    session.WithSecret(secret),
//	    session.WithStore(store),
//	)
//
// Or from environment configuration:
//
//	var cfg redisstore.Config
//	config.MustLoad(&cfg)
//
//	store, client, err := redisstore.Connect(ctx, cfg)
//	defer client.Close()
package redisstore
