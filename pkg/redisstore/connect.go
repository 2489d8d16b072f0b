package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect establishes a Redis connection from config and wraps it in a
// session store. Connection attempts are retried per cfg.RetryAttempts with
// cfg.RetryInterval between them, bounded by cfg.ConnectTimeout.
//
// The returned client is owned by the caller; close it when the store is no
// longer needed.
func Connect(ctx context.Context, cfg Config) (*Store, *redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, nil, errors.Join(ErrFailedToParseConnString, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return New(client, WithKeyPrefix(cfg.KeyPrefix)), client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, nil, ErrRedisNotReady
}

// Healthcheck returns a probe suitable for readiness endpoints.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if _, err := client.Ping(ctx).Result(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
