// Package history persists tool runs and per-tool preferences in a
// local SQLite database. Operations form an append-only log of inputs
// and outputs; preferences store the last-used settings of each tool as
// a JSON blob, restored on the next invocation.
package history
