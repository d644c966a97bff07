package model

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDigest(t *testing.T) {
	t.Parallel()

	sha256Hex := strings.Repeat("ab", 32)

	tests := []struct {
		name      string
		algorithm string
		hex       string
		wantErr   error
	}{
		{
			name:      "valid sha256",
			algorithm: "sha256",
			hex:       sha256Hex,
			wantErr:   nil,
		},
		{
			name:      "valid sha1",
			algorithm: "sha1",
			hex:       strings.Repeat("0a", 20),
			wantErr:   nil,
		},
		{
			name:      "valid blake2b-256",
			algorithm: "blake2b-256",
			hex:       sha256Hex,
			wantErr:   nil,
		},
		{
			name:      "empty hex",
			algorithm: "sha256",
			hex:       "",
			wantErr:   ErrEmptyDigest,
		},
		{
			name:      "wrong length",
			algorithm: "sha256",
			hex:       "abcd",
			wantErr:   ErrInvalidDigestLength,
		},
		{
			name:      "unknown algorithm",
			algorithm: "md4",
			hex:       sha256Hex,
			wantErr:   ErrInvalidDigestLength,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := NewDigest(tt.algorithm, tt.hex)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Algorithm() != tt.algorithm {
				t.Errorf("expected algorithm %q, got %q", tt.algorithm, d.Algorithm())
			}
			if d.Hex() != tt.hex {
				t.Errorf("expected hex %q, got %q", tt.hex, d.Hex())
			}
			if d.IsZero() {
				t.Error("expected non-zero digest")
			}
		})
	}
}

func TestDigest_String(t *testing.T) {
	t.Parallel()

	hex := strings.Repeat("0a", 20)
	d, err := NewDigest("sha1", hex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.String(); got != "sha1:"+hex {
		t.Errorf("unexpected String(): %q", got)
	}
}

func TestKnownDigestAlgorithm(t *testing.T) {
	t.Parallel()

	if !KnownDigestAlgorithm("sha512") {
		t.Error("expected sha512 to be known")
	}
	if KnownDigestAlgorithm("crc32") {
		t.Error("expected crc32 to be unknown")
	}
}
