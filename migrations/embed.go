// Package migrations holds the database schema applied by repository.Migrate.
package migrations

import "embed"

// FS contains the numbered up/down migration files.
//
//go:embed *.sql
var FS embed.FS
