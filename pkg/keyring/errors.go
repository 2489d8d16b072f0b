package keyring

import "errors"

var (
	// ErrNoSecret indicates the ring was constructed without a signing secret.
	ErrNoSecret = errors.New("keyring.no_secret")

	// ErrSecretTooShort indicates a signing secret below the minimum length.
	ErrSecretTooShort = errors.New("keyring.secret_too_short")

	// ErrSecretNotFound indicates the secret is not present in the ring.
	ErrSecretNotFound = errors.New("keyring.secret_not_found")

	// ErrSigningSecretRemoval indicates an attempt to remove the active
	// signing secret.
	ErrSigningSecretRemoval = errors.New("keyring.signing_secret_removal")
)
