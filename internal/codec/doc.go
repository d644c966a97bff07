// Package codec implements the converter tools: base64 in standard and
// URL-safe variants with variant-sniffing decode, and URL percent
// encoding/decoding with Unicode normalization and IDN host handling.
package codec
