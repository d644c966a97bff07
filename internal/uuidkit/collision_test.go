package uuidkit

import (
	"errors"
	"math"
	"testing"
)

func TestRandomBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version int
		want    int
		wantErr bool
	}{
		{name: "v1", version: 1, want: 14},
		{name: "v4", version: 4, want: 122},
		{name: "v6", version: 6, want: 14},
		{name: "v7", version: 7, want: 74},
		{name: "v3 has no random bits", version: 3, wantErr: true},
		{name: "v5 has no random bits", version: 5, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RandomBits(tt.version)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedVersion) {
					t.Errorf("expected ErrUnsupportedVersion, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RandomBits(%d) = %d, want %d", tt.version, got, tt.want)
			}
		})
	}
}

func TestCollisionProbability(t *testing.T) {
	t.Parallel()

	t.Run("fewer than two UUIDs cannot collide", func(t *testing.T) {
		t.Parallel()

		for _, n := range []uint64{0, 1} {
			p, err := CollisionProbability(n, 4)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p != 0 {
				t.Errorf("expected probability 0 for n=%d, got %g", n, p)
			}
		}
	})

	t.Run("v4 at n=2^61 is the half-exponent point", func(t *testing.T) {
		t.Parallel()

		// n²/2N = 2^122 / 2^123 = 0.5, so P = 1 - e^-0.5.
		p, err := CollisionProbability(1<<61, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := 1 - math.Exp(-0.5)
		if math.Abs(p-want) > 1e-12 {
			t.Errorf("expected %g, got %g", want, p)
		}
	})

	t.Run("small n in a large space stays nonzero", func(t *testing.T) {
		t.Parallel()

		// 1-exp rounds to zero here; expm1 must not.
		p, err := CollisionProbability(1_000_000, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p <= 0 {
			t.Errorf("expected positive probability, got %g", p)
		}
		if p >= 1e-18 {
			t.Errorf("expected vanishingly small probability, got %g", p)
		}
	})

	t.Run("probability grows with n", func(t *testing.T) {
		t.Parallel()

		small, err := CollisionProbability(1_000, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		large, err := CollisionProbability(1_000_000, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if small >= large {
			t.Errorf("expected monotonic growth: %g >= %g", small, large)
		}
	})

	t.Run("v1 clock sequence space saturates quickly", func(t *testing.T) {
		t.Parallel()

		p, err := CollisionProbability(1_000, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p < 0.999 {
			t.Errorf("expected near-certain collision in 14-bit space, got %g", p)
		}
	})

	t.Run("unsupported version fails", func(t *testing.T) {
		t.Parallel()

		if _, err := CollisionProbability(100, 5); !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("expected ErrUnsupportedVersion, got %v", err)
		}
	})
}
