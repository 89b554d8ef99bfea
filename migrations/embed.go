// Package migrations embeds the goose SQL migrations so binaries and tests
// apply the same schema without depending on the working directory.
package migrations

import "embed"

// FS holds every *.sql migration at the root of the filesystem.
//
//go:embed *.sql
var FS embed.FS
