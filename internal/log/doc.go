// Package log provides a slog handler wrapper that masks sensitive values
// (HMAC secrets, signed tokens, PEM keys) before they reach the log output.
package log
