// Package migrations embeds the versioned SQL schema migrations applied by
// goose when the database is opened.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
