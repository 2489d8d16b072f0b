package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

// Sign produces a tamper-evident encoding of value keyed by secret.
// The output format is base64url(value) + "|" + base64url(HMAC-SHA256(value)).
// Signing is deterministic and has no side effects, so the same value and
// secret always yield the same signed string.
func Sign(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature
}

// Unsign recovers the original value from a signed string.
//
// Secrets are tried in the order given, stopping at the first whose MAC
// matches; pass the active signing secret first and retained unsigning
// secrets after it so rotated-out cookies keep verifying. The second return
// is false for malformed input or when no secret matches. A false result is
// not an error condition: callers treat it as "no value present".
func Unsign(signed string, secrets ...string) (string, bool) {
	parts := strings.SplitN(signed, "|", 2)
	if len(parts) != 2 {
		return "", false
	}

	encodedValue, signature := parts[0], parts[1]

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", false
	}

	for _, secret := range secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		expectedSig := base64.URLEncoding.EncodeToString(mac.Sum(nil))

		// Constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(signature), []byte(expectedSig)) == 1 {
			return string(value), true
		}
	}

	return "", false
}
