// Package migrations embeds the SQL migration files for the medical
// records database so they ship inside the binary.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
