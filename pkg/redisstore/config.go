package redisstore

import "time"

// Config holds the connection settings for the Connect helper.
type Config struct {
	// ConnectionURL in the format "redis://:password@localhost:6379/0"
	ConnectionURL string `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`

	// KeyPrefix for session keys (default: "session:")
	KeyPrefix string `env:"REDIS_SESSION_KEY_PREFIX" envDefault:"session:"`

	// RetryAttempts is the number of connection attempts before giving up
	RetryAttempts int `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`

	// RetryInterval is the pause between connection attempts
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`

	// ConnectTimeout bounds the whole connection procedure
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}
