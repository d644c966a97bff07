package codec

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// URL errors.
var (
	// ErrInvalidURL is returned when the input cannot be parsed as a URL.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidEscape is returned when percent-decoding encounters a
	// malformed escape sequence.
	ErrInvalidEscape = errors.New("invalid percent-escape sequence")
)

// URLEncodeComponent percent-encodes a single URL component (query value
// semantics: space becomes %20, not +). Input is NFC-normalized first so
// that visually identical Unicode inputs encode identically.
func URLEncodeComponent(s string) string {
	normalized := norm.NFC.String(s)
	// QueryEscape encodes spaces as '+', which is form encoding, not
	// component encoding. Convert to the %20 form callers expect.
	return strings.ReplaceAll(url.QueryEscape(normalized), "+", "%20")
}

// URLDecodeComponent reverses URLEncodeComponent. Both %20 and + are
// accepted for spaces.
func URLDecodeComponent(s string) (string, error) {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidEscape, err)
	}
	return decoded, nil
}

// NormalizeURL parses a full URL and returns its normalized form: the text
// is NFC-normalized, the host is converted to its IDNA (punycode) ASCII
// form, and path/query escaping is canonicalized by the URL parser.
// A URL without a scheme is given "https" so bare domains normalize too.
func NormalizeURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(norm.NFC.String(rawURL))
	if trimmed == "" {
		return "", ErrInvalidURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, err)
	}
	if u.Host == "" {
		return "", ErrInvalidURL
	}

	asciiHost, err := idna.Lookup.ToASCII(u.Hostname())
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, err)
	}
	if port := u.Port(); port != "" {
		u.Host = asciiHost + ":" + port
	} else {
		u.Host = asciiHost
	}

	return u.String(), nil
}

// DenormalizeHost converts a punycode host back to its Unicode form.
// Non-IDN hosts pass through unchanged.
func DenormalizeHost(host string) (string, error) {
	unicodeHost, err := idna.Lookup.ToUnicode(host)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, err)
	}
	return unicodeHost, nil
}
