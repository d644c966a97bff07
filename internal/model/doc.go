// Package model defines the value types shared across the devtools
// packages: the Report structure consumed by the report writers and the
// Digest value object produced by the hash tool.
//
// Types in this package are plain data with no behavior beyond formatting
// helpers. They carry no references to the packages that produce or
// consume them, which keeps the dependency graph acyclic.
package model
