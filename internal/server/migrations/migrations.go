// Package migrations embeds the goose schema migrations for each SQL backend.
package migrations

import "embed"

// Migrations holds one directory per dialect: "postgres" and "sqlite".
//
//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
