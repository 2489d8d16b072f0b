package pgstore

import "time"

// Config holds the connection settings for the Connect helper.
type Config struct {
	// ConnectionString to the database, in pgx URL or DSN form
	ConnectionString string `env:"PG_CONN_URL,required"`

	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	// RetryAttempts is the number of connection attempts before giving up
	RetryAttempts int `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`

	// RetryInterval is the base pause between attempts; the wait grows
	// linearly per attempt
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
}
