package uuidkit

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// namespaceAliases maps the RFC 4122 appendix namespaces to their UUIDs.
var namespaceAliases = map[string]uuid.UUID{
	"dns":  uuid.NameSpaceDNS,
	"url":  uuid.NameSpaceURL,
	"oid":  uuid.NameSpaceOID,
	"x500": uuid.NameSpaceX500,
}

// Request describes one generation call.
type Request struct {
	// Version is the UUID version to generate: 1, 3, 4, 5, 6 or 7.
	Version int

	// Namespace is the v3/v5 namespace: a UUID string or an alias
	// (dns, url, oid, x500). Defaults to dns when empty.
	Namespace string

	// Name is the v3/v5 name input.
	Name string
}

// Generate produces one UUID in standard form for the request.
func Generate(req Request) (string, error) {
	switch req.Version {
	case 1:
		u, err := uuid.NewUUID()
		if err != nil {
			return "", fmt.Errorf("failed to generate v1 UUID: %w", err)
		}
		return u.String(), nil
	case 3, 5:
		return generateNameBased(req)
	case 4:
		u, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("failed to generate v4 UUID: %w", err)
		}
		return u.String(), nil
	case 6:
		return generateV6()
	case 7:
		return generateV7(time.Now())
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedVersion, req.Version)
	}
}

// GenerateBatch produces count UUIDs for the request.
func GenerateBatch(req Request, count int) ([]string, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		u, err := Generate(req)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// generateNameBased produces a v3 (MD5) or v5 (SHA-1) UUID.
func generateNameBased(req Request) (string, error) {
	if req.Name == "" {
		return "", ErrMissingName
	}

	ns, err := resolveNamespace(req.Namespace)
	if err != nil {
		return "", err
	}

	if req.Version == 3 {
		return uuid.NewMD5(ns, []byte(req.Name)).String(), nil
	}
	return uuid.NewSHA1(ns, []byte(req.Name)).String(), nil
}

// resolveNamespace accepts an alias or a UUID string; empty means dns.
func resolveNamespace(namespace string) (uuid.UUID, error) {
	if namespace == "" {
		return uuid.NameSpaceDNS, nil
	}
	if ns, ok := namespaceAliases[strings.ToLower(namespace)]; ok {
		return ns, nil
	}
	ns, err := uuid.Parse(namespace)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %s", ErrInvalidNamespace, namespace)
	}
	return ns, nil
}

// generateV6 builds a v6 UUID by reordering the hex fields of a freshly
// generated v1 so that the high time bits lead. The 60-bit timestamp of a
// v1 is split across the string as time_low(8)-time_mid(4)-1+time_high(3);
// v6 lays the same digits out high-to-low, with clock sequence and node
// unchanged.
func generateV6() (string, error) {
	v1, err := uuid.NewUUID()
	if err != nil {
		return "", fmt.Errorf("failed to generate v6 UUID: %w", err)
	}
	return v6FromV1(v1.String()), nil
}

// v6FromV1 reorders a standard-form v1 string into v6 form.
// v1: aaaaaaaa-bbbb-1ccc-dddd-eeeeeeeeeeee
// timestamp digits high to low: ccc bbbb aaaaaaaa
// v6: cccbbbba-aaaa-6aaa-dddd-eeeeeeeeeeee
func v6FromV1(v1 string) string {
	ts := v1[15:18] + v1[9:13] + v1[0:8] // 15 hex digits, high to low

	var sb strings.Builder
	sb.Grow(36)
	sb.WriteString(ts[:8])
	sb.WriteByte('-')
	sb.WriteString(ts[8:12])
	sb.WriteString("-6")
	sb.WriteString(ts[12:15])
	sb.WriteByte('-')
	sb.WriteString(v1[19:23]) // clock sequence
	sb.WriteByte('-')
	sb.WriteString(v1[24:]) // node
	return sb.String()
}

// generateV7 builds a v7 UUID: 48-bit millisecond Unix timestamp, then
// version/variant-tagged random bytes.
func generateV7(now time.Time) (string, error) {
	var b [16]byte

	ms := uint64(now.UnixMilli()) //nolint:gosec // Unix ms is positive for all representable times
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], ms)
	copy(b[0:6], ts[2:8]) // low 48 bits

	if _, err := rand.Read(b[6:]); err != nil {
		return "", fmt.Errorf("failed to generate v7 UUID: %w", err)
	}
	b[6] = (b[6] & 0x0f) | 0x70 // version 7
	b[8] = (b[8] & 0x3f) | 0x80 // variant RFC 4122

	u, err := uuid.FromBytes(b[:])
	if err != nil {
		return "", fmt.Errorf("failed to generate v7 UUID: %w", err)
	}
	return u.String(), nil
}
