package keyring

import (
	"fmt"
	"slices"
	"sync"
)

// MinSecretLength is the minimum length enforced on signing secrets.
// Unsigning secrets are exempt so legacy secrets can be kept verifiable
// while sessions migrate off them.
const MinSecretLength = 32

// Ring is an ordered set of secrets. The secret at position 0 is the signing
// secret used to produce new signatures; every other secret is unsigning-only
// and is consulted during verification. A Ring is safe for concurrent use:
// rotation can happen while request goroutines read it.
type Ring struct {
	mu      sync.RWMutex
	secrets []string
}

// New creates a ring with the given signing secret and optional unsigning
// secrets, in verification order. Empty unsigning secrets are dropped.
func New(signing string, unsigning ...string) (*Ring, error) {
	if signing == "" {
		return nil, ErrNoSecret
	}
	if len(signing) < MinSecretLength {
		return nil, fmt.Errorf("%w: signing secret has %d chars, need at least %d", ErrSecretTooShort, len(signing), MinSecretLength)
	}

	secrets := make([]string, 0, 1+len(unsigning))
	secrets = append(secrets, signing)
	for _, s := range unsigning {
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return &Ring{secrets: secrets}, nil
}

// AddSigning promotes secret to the signing position. The previous signing
// secret is demoted to the first unsigning position so identifiers it signed
// keep verifying until it is removed.
func (r *Ring) AddSigning(secret string) error {
	if secret == "" {
		return ErrNoSecret
	}
	if len(secret) < MinSecretLength {
		return fmt.Errorf("%w: signing secret has %d chars, need at least %d", ErrSecretTooShort, len(secret), MinSecretLength)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.secrets = append([]string{secret}, r.secrets...)
	return nil
}

// AddUnsigning inserts secret directly after the signing secret. Unsigning
// secrets participate in verification only and carry no length policy.
func (r *Ring) AddUnsigning(secret string) {
	if secret == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.secrets = slices.Insert(r.secrets, 1, secret)
}

// Remove deletes every occurrence of secret except the signing position.
// Removing the active signing secret fails: add a new signing secret first,
// which demotes the current one and makes it removable.
func (r *Ring) Remove(secret string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(r.secrets, secret) {
		return ErrSecretNotFound
	}
	if r.secrets[0] == secret && !slices.Contains(r.secrets[1:], secret) {
		return fmt.Errorf("%w: add a new signing secret first", ErrSigningSecretRemoval)
	}

	head, tail := r.secrets[:1], r.secrets[1:]
	r.secrets = append(head, slices.DeleteFunc(tail, func(s string) bool { return s == secret })...)
	return nil
}

// IsSigning reports whether secret is the active signing secret.
func (r *Ring) IsSigning(secret string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.secrets[0] == secret
}

// Contains reports whether secret is anywhere in the ring.
func (r *Ring) Contains(secret string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Contains(r.secrets, secret)
}

// Signing returns the active signing secret.
func (r *Ring) Signing() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.secrets[0]
}

// Secrets returns a snapshot of all secrets in verification order, signing
// secret first. The returned slice is a copy.
func (r *Ring) Secrets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.secrets)
}

// Len returns the number of secrets in the ring.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.secrets)
}
