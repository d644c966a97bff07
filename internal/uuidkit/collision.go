package uuidkit

import (
	"fmt"
	"math"
)

// RandomBits returns the number of random bits a UUID version carries,
// which determines the collision space N = 2^bits.
//   - v4: 122 bits (everything except version and variant)
//   - v7: 74 bits (random tail within one millisecond)
//   - v1/v6: 14 bits (clock sequence; timestamp and node are not random)
func RandomBits(version int) (int, error) {
	switch version {
	case 1, 6:
		return 14, nil
	case 4:
		return 122, nil
	case 7:
		return 74, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
}

// CollisionProbability estimates the probability that n generated UUIDs of
// the given version contain at least one collision, using the birthday
// bound P ≈ 1 − e^(−n²/2N) with N = 2^bits.
//
// Computed as -expm1(-n²/2N): for realistic n the exponent is tiny and
// 1-exp(x) would round to zero in float64.
func CollisionProbability(n uint64, version int) (float64, error) {
	bits, err := RandomBits(version)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, nil
	}

	nf := float64(n)
	space := math.Pow(2, float64(bits))
	return -math.Expm1(-(nf * nf) / (2 * space)), nil
}
