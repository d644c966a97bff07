package token

import "errors"

// Token errors.
//
// Design decision: sentinel errors so the CLI can distinguish "the token is
// structurally broken" from "the signature does not verify" when choosing
// exit codes and messages.
var (
	// ErrMalformedToken is returned when the compact form does not have
	// exactly three dot-separated segments.
	ErrMalformedToken = errors.New("malformed token: expected 3 dot-separated segments")

	// ErrInvalidSegment is returned when a segment is not valid base64url.
	ErrInvalidSegment = errors.New("invalid token segment: not base64url")

	// ErrInvalidJSON is returned when a decoded header or payload is not
	// valid JSON.
	ErrInvalidJSON = errors.New("invalid token segment: not valid JSON")

	// ErrUnsupportedAlgorithm is returned for algorithms other than
	// HS256, HS384 and HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm: must be HS256, HS384 or HS512")

	// ErrEmptySecret is returned when signing or verifying without a secret.
	ErrEmptySecret = errors.New("secret cannot be empty")
)
