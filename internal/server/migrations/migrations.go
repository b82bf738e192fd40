// Package migrations embeds the schema migrations applied by goose.
package migrations

import "embed"

// Migrations holds the PostgreSQL migrations.
//
//go:embed *.sql
var Migrations embed.FS

// SQLite holds the SQLite migrations under the "sqlite" directory.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
