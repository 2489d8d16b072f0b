package signer_test

import (
	"testing"

	"github.com/dmitrymomot/sessionkit/pkg/signer"
)

func BenchmarkSign(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = signer.Sign("x7_-B9qT0mPzKfWn3vYhL2cJ8dR5sE1a", testSecret)
	}
}

func BenchmarkUnsign(b *testing.B) {
	signed := signer.Sign("x7_-B9qT0mPzKfWn3vYhL2cJ8dR5sE1a", testSecret)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = signer.Unsign(signed, testSecret)
	}
}

func BenchmarkUnsign_RotatedSecret(b *testing.B) {
	// Worst case: the matching secret is last in the rotation list.
	signed := signer.Sign("x7_-B9qT0mPzKfWn3vYhL2cJ8dR5sE1a", rotatedSecret)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = signer.Unsign(signed, testSecret, rotatedSecret)
	}
}
