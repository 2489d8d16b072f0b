// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// first Load call reads an optional .env file into the process environment,
// then every call parses the environment into the given struct based on
// `env` field tags. Nothing is cached between calls, so independent
// components load independent config values.
//
// # Usage
//
//	var cfg session.Config
//	config.MustLoad(&cfg)
//
//	manager, err := session.NewFromConfig(cfg)
//
// # Error Handling
//
// Load returns ErrNilPointer for a nil destination and wraps parse failures
// (missing required variables, malformed values) with ErrParsingConfig.
// MustLoad panics instead, for configuration the application cannot start
// without.
package config
