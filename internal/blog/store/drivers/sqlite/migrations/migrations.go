package migrations

import "embed"

// Migrations holds the sqlite schema, applied by golang-migrate via iofs.
//
//go:embed *.sql
var Migrations embed.FS
