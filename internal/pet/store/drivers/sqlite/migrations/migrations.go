// Package migrations embeds the SQL migration files for the pet service
// database so they can be applied from the compiled binary.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
