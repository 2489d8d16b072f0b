package keyring_test

import (
	"errors"
	"testing"

	"github.com/dmitrymomot/sessionkit/pkg/keyring"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		secrets     string
		wantErr     error
		wantSigning string
		wantLen     int
	}{
		{
			name:        "single secret",
			secrets:     secretA,
			wantSigning: secretA,
			wantLen:     1,
		},
		{
			name:        "comma separated rotation list",
			secrets:     secretA + "," + secretB + "," + secretC,
			wantSigning: secretA,
			wantLen:     3,
		},
		{
			name:        "whitespace around entries is trimmed",
			secrets:     "  " + secretA + " , " + secretB + "  ",
			wantSigning: secretA,
			wantLen:     2,
		},
		{
			name:        "empty entries are dropped",
			secrets:     secretA + ",,," + secretB + ",",
			wantSigning: secretA,
			wantLen:     2,
		},
		{
			name:    "empty value",
			secrets: "",
			wantErr: keyring.ErrNoSecret,
		},
		{
			name:    "only separators",
			secrets: " , , ",
			wantErr: keyring.ErrNoSecret,
		},
		{
			name:    "first secret too short",
			secrets: "short," + secretB,
			wantErr: keyring.ErrSecretTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ring, err := keyring.NewFromConfig(keyring.Config{Secrets: tt.secrets})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewFromConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got := ring.Signing(); got != tt.wantSigning {
				t.Errorf("Signing() = %q, want %q", got, tt.wantSigning)
			}
			if got := ring.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
		})
	}
}
