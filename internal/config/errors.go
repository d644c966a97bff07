package config

import "errors"

// Configuration validation errors returned by Config.Validate.
//
// Design decision: package-level sentinel errors rather than fresh error
// instances so callers can use errors.Is while still getting a readable
// message. errors.New (not fmt.Errorf) because no dynamic values are
// needed.
var (
	// ErrUnknownFormat is returned when --format names a format no writer
	// implements.
	ErrUnknownFormat = errors.New("unknown report format: must be text, json, markdown, csv or sql")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidCount is returned when the generation count is not positive.
	ErrInvalidCount = errors.New("invalid count: must be positive")

	// ErrInvalidUUIDVersion is returned for UUID versions outside 1-7.
	// Version 2 (DCE security) is intentionally unsupported, matching the
	// generator surface.
	ErrInvalidUUIDVersion = errors.New("invalid UUID version: must be 1, 3, 4, 5, 6 or 7")

	// ErrInvalidQRSize is returned when the QR image size is smaller than
	// the smallest possible symbol (21 modules).
	ErrInvalidQRSize = errors.New("invalid QR size: must be at least 21 pixels")

	// ErrInvalidQRLevel is returned for unknown error-correction levels.
	ErrInvalidQRLevel = errors.New("invalid QR error-correction level: must be L, M, Q or H")
)
