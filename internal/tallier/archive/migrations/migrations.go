// Package migrations embeds the archive schema migrations for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
