//go:build !sqlite_cgo

package sqlite

// This file is compiled by default and uses the pure Go SQLite
// implementation, so cross-compilation needs no C toolchain.
//
// Build command:
//   CGO_ENABLED=0 go build ./...
//
// Driver used: modernc.org/sqlite (FTS5 included)

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the database/sql driver to open.
	DriverName = "sqlite"

	// BuildMode describes the current build configuration.
	BuildMode = "purego"
)
