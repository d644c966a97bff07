package uuidkit

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// uuidPattern matches the RFC 4122 text layout with a version nibble in
// 1-7 and an RFC variant nibble. The google/uuid validator only covers
// versions 1-5, so validation here is regex plus nibble inspection.
var uuidPattern = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-[1-7][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// gregorianToUnix is the number of 100ns intervals between the Gregorian
// epoch (1582-10-15) and the Unix epoch (1970-01-01), used by the v1/v6
// timestamp layout.
const gregorianToUnix = 122192928000000000

// Info holds the fields parsed from a UUID. Timestamp, ClockSequence and
// Node are populated only for the versions that carry them.
type Info struct {
	// Value is the UUID in standard lowercase form.
	Value string

	// Version is the version nibble (1-7).
	Version int

	// Variant is the variant description ("RFC 4122" for 8/9/a/b).
	Variant string

	// Timestamp is the embedded creation time (v1, v6, v7).
	Timestamp *time.Time

	// ClockSequence is the 14-bit clock sequence (v1, v6).
	ClockSequence *int

	// Node is the 48-bit node field as hex (v1, v6).
	Node string
}

// IsValid reports whether s is a well-formed UUID of version 1-7 with an
// RFC 4122 variant. Input is case-insensitive.
func IsValid(s string) bool {
	return uuidPattern.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// Parse validates s and extracts its version, variant and, where present,
// timestamp, clock sequence and node fields.
func Parse(s string) (*Info, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if !uuidPattern.MatchString(normalized) {
		return nil, ErrInvalidUUID
	}

	info := &Info{
		Value:   normalized,
		Version: int(normalized[14] - '0'),
		Variant: "RFC 4122",
	}

	switch info.Version {
	case 1:
		ts := timestampFromHex(normalized[15:18] + normalized[9:13] + normalized[0:8])
		info.Timestamp = &ts
		info.ClockSequence = clockSequence(normalized)
		info.Node = normalized[24:]
	case 6:
		// v6 carries the same digits in high-to-low order.
		ts := timestampFromHex(normalized[0:8] + normalized[9:13] + normalized[15:18])
		info.Timestamp = &ts
		info.ClockSequence = clockSequence(normalized)
		info.Node = normalized[24:]
	case 7:
		// First 48 bits are a millisecond Unix timestamp.
		ms, err := strconv.ParseInt(normalized[0:8]+normalized[9:13], 16, 64)
		if err == nil {
			ts := time.UnixMilli(ms).UTC()
			info.Timestamp = &ts
		}
	}

	return info, nil
}

// timestampFromHex converts 15 hex digits of a 60-bit Gregorian timestamp
// (100ns intervals since 1582-10-15) into a time.
func timestampFromHex(hexDigits string) time.Time {
	ticks, err := strconv.ParseInt(hexDigits, 16, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(0, (ticks-gregorianToUnix)*100).UTC()
}

// clockSequence extracts the 14-bit clock sequence from a v1/v6 UUID.
func clockSequence(normalized string) *int {
	raw, err := strconv.ParseInt(normalized[19:23], 16, 32)
	if err != nil {
		return nil
	}
	seq := int(raw & 0x3fff)
	return &seq
}

// Timestamp returns the embedded creation time of a v1, v6 or v7 UUID.
func Timestamp(s string) (time.Time, error) {
	info, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	if info.Timestamp == nil {
		return time.Time{}, ErrNoTimestamp
	}
	return *info.Timestamp, nil
}
