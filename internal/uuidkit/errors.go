package uuidkit

import "errors"

// UUID errors.
var (
	// ErrInvalidUUID is returned when the input does not match the
	// RFC 4122 text layout with a version in 1-7.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrUnsupportedVersion is returned when generation is requested for a
	// version the generator does not produce.
	ErrUnsupportedVersion = errors.New("unsupported UUID version: must be 1, 3, 4, 5, 6 or 7")

	// ErrMissingName is returned when v3/v5 generation lacks the name input.
	ErrMissingName = errors.New("name-based UUIDs (v3/v5) require a name")

	// ErrInvalidNamespace is returned when the v3/v5 namespace is not a
	// valid UUID or a known namespace alias.
	ErrInvalidNamespace = errors.New("invalid namespace: must be a UUID or one of dns, url, oid, x500")

	// ErrUnknownFormat is returned for an unrecognized output format name.
	ErrUnknownFormat = errors.New("unknown UUID format: must be standard, compact, urn or braced")

	// ErrNoTimestamp is returned when a timestamp is requested from a
	// version that does not embed one.
	ErrNoTimestamp = errors.New("UUID version carries no timestamp")
)
