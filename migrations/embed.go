package migrations

import "embed"

// Files holds the forward-only SQL migrations that build the Cradle
// schema, embedded so the binary migrates itself on startup.
//
//go:embed *.sql
var Files embed.FS
