package uuidkit

import (
	"fmt"
	"strings"
)

// Format is a UUID output format.
type Format int

const (
	// FormatStandard is the hyphenated 8-4-4-4-12 form.
	FormatStandard Format = iota

	// FormatCompact removes the hyphens.
	FormatCompact

	// FormatURN prefixes the standard form with "urn:uuid:".
	FormatURN

	// FormatBraced wraps the standard form in braces (Microsoft registry
	// style).
	FormatBraced
)

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "standard", "":
		return FormatStandard, nil
	case "compact":
		return FormatCompact, nil
	case "urn":
		return FormatURN, nil
	case "braced":
		return FormatBraced, nil
	default:
		return FormatStandard, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatCompact:
		return "compact"
	case FormatURN:
		return "urn"
	case FormatBraced:
		return "braced"
	default:
		return "standard"
	}
}

// FormatUUID renders a standard-form UUID in the given format. uppercase
// upper-cases the hex digits (prefixes and braces are unaffected).
func FormatUUID(standard string, format Format, uppercase bool) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(standard))
	if !uuidPattern.MatchString(normalized) {
		return "", ErrInvalidUUID
	}

	hex := normalized
	if uppercase {
		hex = strings.ToUpper(hex)
	}

	switch format {
	case FormatCompact:
		return strings.ReplaceAll(hex, "-", ""), nil
	case FormatURN:
		return "urn:uuid:" + hex, nil
	case FormatBraced:
		return "{" + hex + "}", nil
	default:
		return hex, nil
	}
}

// ExpandCompact re-inserts hyphens into a 32-digit compact UUID at
// positions 8/12/16/20, reproducing the standard form.
func ExpandCompact(compact string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(compact))
	if len(normalized) != 32 {
		return "", ErrInvalidUUID
	}

	standard := normalized[0:8] + "-" + normalized[8:12] + "-" +
		normalized[12:16] + "-" + normalized[16:20] + "-" + normalized[20:]
	if !uuidPattern.MatchString(standard) {
		return "", ErrInvalidUUID
	}
	return standard, nil
}
