// Package keyring maintains the ordered set of secrets used to sign and
// verify session identifiers, supporting zero-downtime secret rotation.
//
// Exactly one secret — position 0 — is the signing secret; it produces every
// new signature. All remaining secrets are unsigning secrets: they are tried
// during verification so identifiers issued under retired secrets stay valid
// until those secrets are explicitly removed.
//
// # Rotation
//
// Rotating to a fresh secret is a two-step process with no invalid window:
//
//	ring, _ := keyring.New(currentSecret)
//
//	// 1. Promote the new secret. The old one is demoted to unsigning,
//	//    so existing sessions keep verifying.
//	_ = ring.AddSigning(newSecret)
//
//	// 2. Once old sessions have aged out, drop the retired secret.
//	_ = ring.Remove(currentSecret)
//
// The signing secret can never be removed directly; Remove refuses with
// ErrSigningSecretRemoval until a replacement has been promoted. Signing
// secrets must be at least MinSecretLength characters; unsigning secrets are
// exempt, which allows migrating away from legacy secrets that predate the
// policy.
//
// # Configuration
//
// Twelve-factor setups can build a ring from a comma-separated environment
// variable, first entry signing:
//
//	var cfg keyring.Config
//	_ = env.Parse(&cfg) // SESSION_SECRETS="new-secret...,old-secret..."
//	ring, err := keyring.NewFromConfig(cfg)
//
// A Ring is safe for concurrent use; mutation errors are synchronous and
// reported to the caller attempting the mutation.
package keyring
