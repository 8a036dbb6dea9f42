package migrations

import "embed"

// FS holds the SQL migration files. Ordering across migrations is the
// lexical order of their filenames.
//
//go:embed *.sql
var FS embed.FS
