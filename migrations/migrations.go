// Package migrations embeds the versioned schema scripts shipped with the binary.
package migrations

import "embed"

// SQLite holds the forward-only migrations, named <version>_<title>.up.sql.
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// SQLiteDir is the directory inside SQLite that holds the scripts.
const SQLiteDir = "sqlite"
