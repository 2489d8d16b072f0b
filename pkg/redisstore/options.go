package redisstore

// Option is a functional option for configuring the Store
type Option func(*Store)

// WithKeyPrefix replaces the default "session:" key prefix, letting several
// applications share one Redis database without key collisions.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}
