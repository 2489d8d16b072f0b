package keyring

import "strings"

// Config holds keyring configuration for environment-based setup.
type Config struct {
	// Secrets is a comma-separated list; the first entry is the signing
	// secret, the rest are unsigning secrets in verification order.
	Secrets string `env:"SESSION_SECRETS,required"`
}

// parseSecrets splits the secrets string into a slice
func (c Config) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}

// NewFromConfig creates a Ring from the provided Config.
func NewFromConfig(cfg Config) (*Ring, error) {
	secrets := cfg.parseSecrets()
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	return New(secrets[0], secrets[1:]...)
}
