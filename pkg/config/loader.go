package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvOnce guards the .env bootstrap; the file is read at most once per
// process, after which the environment is the single source of truth.
var dotenvOnce sync.Once

// Load fills the configuration struct from environment variables based on
// `env` field tags. A .env file in the working directory is loaded into the
// environment on the first call; a missing file is not an error.
//
// Unlike a cached loader, every call re-parses the environment, so separate
// components get independent config values and tests can vary the
// environment between cases.
//
// Example:
//
//	type Config struct {
//		Secrets    string `env:"SESSION_SECRETS,required"`
//		CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sessionId"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is a development convenience and may not exist.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics on failure. Intended for configuration
// the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}
