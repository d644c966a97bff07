// Package uuidkit implements UUID generation, validation, parsing and
// collision estimation for the uuid tool.
//
// Versions 1, 3, 4 and 5 delegate to github.com/google/uuid. Version 6 is
// built by reordering the time fields of a freshly generated v1 so that
// the high time bits lead (time-ordered for indexing). Version 7 is built
// from a 48-bit millisecond Unix timestamp followed by version- and
// variant-tagged random bytes. The validator recognizes versions 1-7,
// which is wider than the library validator's v1-v5 coverage.
package uuidkit
