package uuidkit

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// RFC 9562 appendix test vectors: the v1 example and its v6 counterpart.
const (
	rfcV1Example = "c232ab00-9414-11ec-b3c8-9f6bdeced846"
	rfcV6Example = "1ec9414c-232a-6b00-b3c8-9f6bdeced846"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("v4 has correct version and variant nibbles", func(t *testing.T) {
		t.Parallel()

		for i := 0; i < 50; i++ {
			u, err := Generate(Request{Version: 4})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u[14] != '4' {
				t.Errorf("expected version nibble '4', got %q in %s", u[14], u)
			}
			if !strings.ContainsRune("89ab", rune(u[19])) {
				t.Errorf("expected variant nibble in 89ab, got %q in %s", u[19], u)
			}
		}
	})

	t.Run("v1 is valid and carries a recent timestamp", func(t *testing.T) {
		t.Parallel()

		u, err := Generate(Request{Version: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !IsValid(u) {
			t.Fatalf("expected valid UUID, got %s", u)
		}

		ts, err := Timestamp(u)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d := time.Since(ts); d < -time.Minute || d > time.Minute {
			t.Errorf("expected timestamp near now, got %v", ts)
		}
	})

	t.Run("v3 matches RFC vector", func(t *testing.T) {
		t.Parallel()

		u, err := Generate(Request{Version: 3, Namespace: "dns", Name: "www.example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u != "5df41881-3aed-3515-88a7-2f4a814cf09e" {
			t.Errorf("unexpected v3 UUID: %s", u)
		}
	})

	t.Run("v5 matches RFC vector", func(t *testing.T) {
		t.Parallel()

		u, err := Generate(Request{Version: 5, Namespace: "dns", Name: "www.example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u != "2ed6657d-e927-568b-95e1-2665a8aea6a2" {
			t.Errorf("unexpected v5 UUID: %s", u)
		}
	})

	t.Run("v5 accepts explicit namespace UUID", func(t *testing.T) {
		t.Parallel()

		u, err := Generate(Request{
			Version:   5,
			Namespace: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", // same as dns alias
			Name:      "www.example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u != "2ed6657d-e927-568b-95e1-2665a8aea6a2" {
			t.Errorf("expected alias and explicit namespace to agree, got %s", u)
		}
	})

	t.Run("v6 has version nibble 6 and valid layout", func(t *testing.T) {
		t.Parallel()

		u, err := Generate(Request{Version: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u[14] != '6' {
			t.Errorf("expected version nibble '6', got %q in %s", u[14], u)
		}
		if !IsValid(u) {
			t.Errorf("expected valid UUID, got %s", u)
		}
	})

	t.Run("v6 UUIDs sort by generation time", func(t *testing.T) {
		t.Parallel()

		a, err := Generate(Request{Version: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(time.Millisecond)
		b, err := Generate(Request{Version: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !(a < b) {
			t.Errorf("expected lexicographic time ordering: %s !< %s", a, b)
		}
	})

	t.Run("v7 has correct nibbles and a recent timestamp", func(t *testing.T) {
		t.Parallel()

		u, err := Generate(Request{Version: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u[14] != '7' {
			t.Errorf("expected version nibble '7', got %q in %s", u[14], u)
		}
		if !strings.ContainsRune("89ab", rune(u[19])) {
			t.Errorf("expected variant nibble in 89ab, got %q in %s", u[19], u)
		}

		ts, err := Timestamp(u)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d := time.Since(ts); d < -time.Second || d > time.Minute {
			t.Errorf("expected timestamp near now, got %v", ts)
		}
	})

	t.Run("v3 without name fails", func(t *testing.T) {
		t.Parallel()

		_, err := Generate(Request{Version: 3})
		if !errors.Is(err, ErrMissingName) {
			t.Errorf("expected ErrMissingName, got %v", err)
		}
	})

	t.Run("bad namespace fails", func(t *testing.T) {
		t.Parallel()

		_, err := Generate(Request{Version: 5, Namespace: "nope", Name: "x"})
		if !errors.Is(err, ErrInvalidNamespace) {
			t.Errorf("expected ErrInvalidNamespace, got %v", err)
		}
	})

	t.Run("version 2 is unsupported", func(t *testing.T) {
		t.Parallel()

		_, err := Generate(Request{Version: 2})
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("expected ErrUnsupportedVersion, got %v", err)
		}
	})
}

func TestV6FromV1(t *testing.T) {
	t.Parallel()

	// The RFC publishes the same timestamp/clock/node as both a v1 and a
	// v6 example; the reorder must map one onto the other.
	if got := v6FromV1(rfcV1Example); got != rfcV6Example {
		t.Errorf("expected %s, got %s", rfcV6Example, got)
	}
}

func TestGenerateBatch(t *testing.T) {
	t.Parallel()

	t.Run("produces requested count", func(t *testing.T) {
		t.Parallel()

		batch, err := GenerateBatch(Request{Version: 4}, 25)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(batch) != 25 {
			t.Fatalf("expected 25 UUIDs, got %d", len(batch))
		}

		seen := make(map[string]bool, len(batch))
		for _, u := range batch {
			if seen[u] {
				t.Errorf("duplicate UUID in batch: %s", u)
			}
			seen[u] = true
		}
	})

	t.Run("propagates generation errors", func(t *testing.T) {
		t.Parallel()

		_, err := GenerateBatch(Request{Version: 3}, 2)
		if !errors.Is(err, ErrMissingName) {
			t.Errorf("expected ErrMissingName, got %v", err)
		}
	})
}
