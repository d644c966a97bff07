package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Algorithm is an HMAC signing algorithm name.
type Algorithm string

// Supported HMAC algorithms.
const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToUpper(name)) {
	case HS256:
		return HS256, nil
	case HS384:
		return HS384, nil
	case HS512:
		return HS512, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
}

// method returns the golang-jwt signing method for the algorithm.
func (a Algorithm) method() (*jwt.SigningMethodHMAC, error) {
	switch a {
	case HS256:
		return jwt.SigningMethodHS256, nil
	case HS384:
		return jwt.SigningMethodHS384, nil
	case HS512:
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
	}
}

// Decoded is a structurally decoded token. The header and payload are
// compact JSON; the signature segment is kept as-is (base64url text).
// Decoding performs no verification.
type Decoded struct {
	// Header is the decoded JOSE header JSON.
	Header json.RawMessage `json:"header"`

	// Payload is the decoded claims JSON.
	Payload json.RawMessage `json:"payload"`

	// Signature is the third segment, opaque base64url text.
	Signature string `json:"signature"`

	// Raw is the original compact token.
	Raw string `json:"-"`
}

// Decode splits a compact token and base64url-decodes the header and
// payload. Structural validation only: exactly three segments, valid
// base64url, valid JSON. The signature is not checked.
func Decode(raw string) (*Decoded, error) {
	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}

	header, err := decodeSegment(parts[0])
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	payload, err := decodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}

	return &Decoded{
		Header:    header,
		Payload:   payload,
		Signature: parts[2],
		Raw:       raw,
	}, nil
}

// decodeSegment base64url-decodes one segment and checks it is JSON.
func decodeSegment(seg string) (json.RawMessage, error) {
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(seg, "="))
	if err != nil {
		return nil, ErrInvalidSegment
	}
	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}
	return json.RawMessage(data), nil
}

// Algorithm returns the "alg" value from the header, or an error if the
// header does not carry a supported HMAC algorithm.
func (d *Decoded) Algorithm() (Algorithm, error) {
	var header struct {
		Alg string `json:"alg"`
	}
	if err := json.Unmarshal(d.Header, &header); err != nil {
		return "", ErrInvalidJSON
	}
	return ParseAlgorithm(header.Alg)
}

// Claims unmarshals the payload into a generic map.
func (d *Decoded) Claims() (map[string]any, error) {
	var claims map[string]any
	if err := json.Unmarshal(d.Payload, &claims); err != nil {
		return nil, ErrInvalidJSON
	}
	return claims, nil
}

// Registered extracts the registered claims (sub, iss, iat, exp, ...) from
// the payload for display. Unknown claims are ignored.
func (d *Decoded) Registered() (*jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims
	if err := json.Unmarshal(d.Payload, &claims); err != nil {
		return nil, ErrInvalidJSON
	}
	return &claims, nil
}

// Expired reports whether the payload carries an "exp" claim in the past.
// Tokens without exp are never considered expired.
func (d *Decoded) Expired(now time.Time) bool {
	claims, err := d.Registered()
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}

// Encode builds and signs a compact token from raw header and payload
// JSON. The JSON is compacted, not re-marshaled, so the caller's key order
// survives — required to reproduce canonical example tokens. A nil header
// produces the default {"alg":<alg>,"typ":"JWT"}.
func Encode(header, payload json.RawMessage, secret []byte, alg Algorithm) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}
	if header == nil {
		header = json.RawMessage(fmt.Sprintf(`{"alg":%q,"typ":"JWT"}`, string(alg)))
	}

	headerSeg, err := encodeSegment(header)
	if err != nil {
		return "", fmt.Errorf("header: %w", err)
	}
	payloadSeg, err := encodeSegment(payload)
	if err != nil {
		return "", fmt.Errorf("payload: %w", err)
	}

	signingInput := headerSeg + "." + payloadSeg
	signature, err := Sign(signingInput, secret, alg)
	if err != nil {
		return "", err
	}

	return signingInput + "." + signature, nil
}

// encodeSegment compacts raw JSON and base64url-encodes it without padding.
func encodeSegment(raw json.RawMessage) (string, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return "", ErrInvalidJSON
	}
	return base64.RawURLEncoding.EncodeToString(compact.Bytes()), nil
}

// Sign computes the base64url HMAC signature over signingInput
// ("header.payload").
func Sign(signingInput string, secret []byte, alg Algorithm) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}
	method, err := alg.method()
	if err != nil {
		return "", err
	}

	sig, err := method.Sign(signingInput, secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(sig), nil
}

// Verify recomputes the HMAC over the token's signing input and compares
// it against the signature segment. The algorithm comes from the token
// header; the comparison inside golang-jwt uses hmac.Equal and is
// constant-time. Returns false (with nil error) for a well-formed token
// whose signature simply does not match.
func Verify(raw string, secret []byte) (bool, error) {
	if len(secret) == 0 {
		return false, ErrEmptySecret
	}

	decoded, err := Decode(raw)
	if err != nil {
		return false, err
	}
	alg, err := decoded.Algorithm()
	if err != nil {
		return false, err
	}
	method, err := alg.method()
	if err != nil {
		return false, err
	}

	sig, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(decoded.Signature, "="))
	if err != nil {
		return false, fmt.Errorf("signature: %w", ErrInvalidSegment)
	}

	parts := strings.Split(decoded.Raw, ".")
	signingInput := parts[0] + "." + parts[1]

	if err := method.Verify(signingInput, sig, secret); err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify: %w", err)
	}
	return true, nil
}
