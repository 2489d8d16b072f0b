package mongostore

type storeConfig struct {
	collection string
}

// Option is a functional option for configuring the Store
type Option func(*storeConfig)

// WithCollection replaces the default "sessions" collection name.
func WithCollection(name string) Option {
	return func(c *storeConfig) {
		c.collection = name
	}
}
