// Package hashutil computes message digests for the hash tool. It exposes
// a named algorithm registry (SHA-1/256/384/512 core, SHA-3 and BLAKE2b
// extended), concurrent per-algorithm digests for in-memory input, a
// single-pass streaming variant for readers, and a bounded-concurrency
// batch hasher for multiple files.
package hashutil
