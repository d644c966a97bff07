package model

import "errors"

// Digest errors.
var (
	// ErrEmptyDigest is returned when a digest value object is constructed
	// from an empty hex string.
	ErrEmptyDigest = errors.New("digest cannot be empty")

	// ErrInvalidDigestLength is returned when the hex length does not match
	// the declared algorithm's output size.
	ErrInvalidDigestLength = errors.New("digest length does not match algorithm")
)

// digestHexLengths maps algorithm names to the expected lowercase hex
// length of their output. Extended algorithms share entries with the core
// set where the output size is identical.
var digestHexLengths = map[string]int{
	"sha1":        40,
	"sha256":      64,
	"sha384":      96,
	"sha512":      128,
	"sha3-256":    64,
	"sha3-512":    128,
	"blake2b-256": 64,
}

// Digest is an immutable value object pairing an algorithm name with its
// lowercase hex output. It validates structural correctness on
// construction: the algorithm must be known and the hex length must match.
type Digest struct {
	algorithm string
	hex       string
}

// NewDigest creates a Digest after validating the hex length against the
// algorithm's output size.
func NewDigest(algorithm, hexDigest string) (Digest, error) {
	if hexDigest == "" {
		return Digest{}, ErrEmptyDigest
	}
	want, ok := digestHexLengths[algorithm]
	if !ok || len(hexDigest) != want {
		return Digest{}, ErrInvalidDigestLength
	}
	return Digest{algorithm: algorithm, hex: hexDigest}, nil
}

// Algorithm returns the algorithm name (e.g. "sha256").
func (d Digest) Algorithm() string { return d.algorithm }

// Hex returns the lowercase hex digest.
func (d Digest) Hex() string { return d.hex }

// String returns "algorithm:hex", convenient for logs and text output.
func (d Digest) String() string { return d.algorithm + ":" + d.hex }

// IsZero reports whether this is the zero value.
func (d Digest) IsZero() bool { return d.algorithm == "" && d.hex == "" }

// KnownDigestAlgorithm reports whether the named algorithm has a known
// output size.
func KnownDigestAlgorithm(name string) bool {
	_, ok := digestHexLengths[name]
	return ok
}
