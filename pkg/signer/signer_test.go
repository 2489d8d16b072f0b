package signer_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/dmitrymomot/sessionkit/pkg/signer"
)

const (
	testSecret    = "test-signing-secret-with-32-chars-min"
	rotatedSecret = "old-signing-secret-still-verifiable-ok"
)

func TestSignUnsign_RoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value string
	}{
		{"simple id", "abc123"},
		{"empty value", ""},
		{"base64url alphabet", "x7_-B9qT0mPzKfWn3vYhL2cJ8dR5sE1a"},
		{"separator in value", "left|right"},
		{"unicode", "séance-世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			signed := signer.Sign(tt.value, testSecret)

			got, ok := signer.Unsign(signed, testSecret)
			if !ok {
				t.Fatalf("Unsign() ok = false, want true")
			}
			if got != tt.value {
				t.Errorf("Unsign() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestSign_Deterministic(t *testing.T) {
	t.Parallel()
	a := signer.Sign("session-id", testSecret)
	b := signer.Sign("session-id", testSecret)
	if a != b {
		t.Errorf("Sign() not deterministic: %q != %q", a, b)
	}
}

func TestUnsign_WrongSecret(t *testing.T) {
	t.Parallel()
	signed := signer.Sign("session-id", testSecret)

	if _, ok := signer.Unsign(signed, rotatedSecret); ok {
		t.Error("Unsign() verified a value signed with a different secret")
	}
}

func TestUnsign_SecretRotation(t *testing.T) {
	t.Parallel()
	oldSigned := signer.Sign("session-id", rotatedSecret)

	// Old cookie keeps verifying while the retired secret is still supplied.
	got, ok := signer.Unsign(oldSigned, testSecret, rotatedSecret)
	if !ok {
		t.Fatal("Unsign() rejected a value signed with a retained secret")
	}
	if got != "session-id" {
		t.Errorf("Unsign() = %q, want %q", got, "session-id")
	}

	// Once the retired secret is dropped, the value no longer verifies.
	if _, ok := signer.Unsign(oldSigned, testSecret); ok {
		t.Error("Unsign() verified a value after its secret was dropped")
	}
}

func TestUnsign_Tampered(t *testing.T) {
	t.Parallel()
	signed := signer.Sign("original", testSecret)
	parts := strings.SplitN(signed, "|", 2)

	tests := []struct {
		name  string
		value string
	}{
		{"tampered value", base64.URLEncoding.EncodeToString([]byte("forged")) + "|" + parts[1]},
		{"tampered signature", parts[0] + "|" + base64.URLEncoding.EncodeToString([]byte("forged-signature"))},
		{"swapped parts", parts[1] + "|" + parts[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, ok := signer.Unsign(tt.value, testSecret); ok {
				t.Error("Unsign() accepted a tampered value")
			}
		})
	}
}

func TestUnsign_Malformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"no separator", "c2Vzc2lvbg=="},
		{"invalid base64", "!!!|c2ln"},
		{"only separator", "|"},
		{"raw session id", "plain-session-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, ok := signer.Unsign(tt.value, testSecret); ok {
				t.Errorf("Unsign(%q) ok = true, want false", tt.value)
			}
		})
	}
}

func TestUnsign_NoSecrets(t *testing.T) {
	t.Parallel()
	signed := signer.Sign("session-id", testSecret)

	if _, ok := signer.Unsign(signed); ok {
		t.Error("Unsign() with no secrets should never verify")
	}
}
