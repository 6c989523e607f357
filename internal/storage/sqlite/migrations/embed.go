package migrations

import "embed"

// FS contains the embedded catalog schema migrations.
//
//go:embed *.sql
var FS embed.FS
