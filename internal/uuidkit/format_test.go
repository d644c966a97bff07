package uuidkit

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "standard", input: "standard", want: FormatStandard},
		{name: "empty defaults to standard", input: "", want: FormatStandard},
		{name: "compact", input: "compact", want: FormatCompact},
		{name: "urn", input: "urn", want: FormatURN},
		{name: "braced", input: "braced", want: FormatBraced},
		{name: "case insensitive", input: "URN", want: FormatURN},
		{name: "unknown", input: "hex", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatUUID(t *testing.T) {
	t.Parallel()

	const standard = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name      string
		format    Format
		uppercase bool
		want      string
	}{
		{
			name:   "standard",
			format: FormatStandard,
			want:   standard,
		},
		{
			name:   "compact",
			format: FormatCompact,
			want:   "550e8400e29b41d4a716446655440000",
		},
		{
			name:   "urn",
			format: FormatURN,
			want:   "urn:uuid:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:   "braced",
			format: FormatBraced,
			want:   "{550e8400-e29b-41d4-a716-446655440000}",
		},
		{
			name:      "standard uppercase",
			format:    FormatStandard,
			uppercase: true,
			want:      "550E8400-E29B-41D4-A716-446655440000",
		},
		{
			name:      "urn uppercase keeps prefix lowercase",
			format:    FormatURN,
			uppercase: true,
			want:      "urn:uuid:550E8400-E29B-41D4-A716-446655440000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatUUID(standard, tt.format, tt.uppercase)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatUUID() = %s, want %s", got, tt.want)
			}
		})
	}

	t.Run("invalid input fails", func(t *testing.T) {
		t.Parallel()

		if _, err := FormatUUID("nope", FormatCompact, false); !errors.Is(err, ErrInvalidUUID) {
			t.Errorf("expected ErrInvalidUUID, got %v", err)
		}
	})
}

func TestExpandCompact(t *testing.T) {
	t.Parallel()

	t.Run("round trips through compact form", func(t *testing.T) {
		t.Parallel()

		for _, version := range []int{1, 4, 6, 7} {
			u, err := Generate(Request{Version: version})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			compact, err := FormatUUID(u, FormatCompact, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			expanded, err := ExpandCompact(compact)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if expanded != u {
				t.Errorf("v%d round trip mismatch: %s != %s", version, expanded, u)
			}
		}
	})

	t.Run("wrong length fails", func(t *testing.T) {
		t.Parallel()

		if _, err := ExpandCompact("550e8400"); !errors.Is(err, ErrInvalidUUID) {
			t.Errorf("expected ErrInvalidUUID, got %v", err)
		}
	})

	t.Run("bad version nibble fails", func(t *testing.T) {
		t.Parallel()

		if _, err := ExpandCompact("550e8400e29b91d4a716446655440000"); !errors.Is(err, ErrInvalidUUID) {
			t.Errorf("expected ErrInvalidUUID, got %v", err)
		}
	})
}
