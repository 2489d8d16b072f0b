package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect establishes a MongoDB connection from config and wraps the session
// collection in a store, creating the TTL index along the way. Attempts are
// retried per cfg.RetryAttempts with cfg.RetryInterval between them.
//
// The returned client is owned by the caller; disconnect it when the store
// is no longer needed.
func Connect(ctx context.Context, cfg Config) (*Store, *mongo.Client, error) {
	var lastErr error

	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime).
				SetRetryWrites(cfg.RetryWrites).
				SetRetryReads(cfg.RetryReads),
		)
		if err == nil {
			if err = client.Ping(ctx, nil); err == nil {
				store := New(client.Database(cfg.Database), WithCollection(cfg.Collection))
				if err := store.EnsureIndexes(ctx); err != nil {
					_ = client.Disconnect(ctx)
					return nil, nil, err
				}
				return store, client, nil
			}
			_ = client.Disconnect(ctx)
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, nil, errors.Join(ErrFailedToConnect, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, nil, errors.Join(ErrFailedToConnect, lastErr)
}

// Healthcheck returns a probe suitable for readiness endpoints.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
