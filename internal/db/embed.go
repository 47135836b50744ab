package db

import "embed"

// migrationFS carries the schema migrations compiled into the binary, so
// the server and the ctl tool migrate without files on disk.
//
//go:embed migrations/*.sql
var migrationFS embed.FS
