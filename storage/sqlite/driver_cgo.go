//go:build sqlite_cgo

package sqlite

// This file is compiled when building with the sqlite_cgo tag and uses
// the C SQLite library for faster queries on large indexes.
//
// Build command:
//   CGO_ENABLED=1 go build -tags "sqlite_cgo sqlite_fts5" ./...
//
// The sqlite_fts5 tag is required: the index schema depends on FTS5.
//
// Driver used: github.com/mattn/go-sqlite3

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the database/sql driver to open.
	DriverName = "sqlite3"

	// BuildMode describes the current build configuration.
	BuildMode = "cgo"
)
