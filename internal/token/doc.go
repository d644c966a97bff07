// Package token implements JWT decoding, encoding and HMAC verification
// for the jwt tool.
//
// Decoding splits the compact form on "." and base64url-decodes the header
// and payload; the signature stays opaque. Encoding compacts the caller's
// JSON without reordering keys, so a token built from the canonical jwt.io
// example inputs reproduces the canonical example output byte for byte.
// Signing and verification delegate to golang-jwt's HMAC signing methods;
// verification is therefore constant-time.
package token
