// Package signer provides stateless helpers for signing and verifying opaque
// identifiers with HMAC-SHA256.
//
// A signed identifier is the base64url-encoded value joined to its
// base64url-encoded MAC with a "|" separator. Signing always uses a single
// secret; verification accepts any number of secrets and tries them in order,
// which is what makes zero-downtime secret rotation possible: new identifiers
// are signed with the active secret while identifiers signed with retired
// secrets keep verifying until those secrets are dropped.
//
// # Usage
//
//	signed := signer.Sign(sessionID, ring.Signing())
//
//	id, ok := signer.Unsign(cookieValue, ring.Secrets()...)
//	if !ok {
//	    // tampered, malformed, or signed with an unknown secret —
//	    // treat as "no session", never as a fatal error
//	}
//
// Verification failures are reported as a boolean, not an error, because a
// cookie that fails to verify is an expected condition (expired deployments,
// rotated secrets, hand-crafted values) rather than a fault in the caller.
//
// All comparisons of MACs are constant-time.
package signer
