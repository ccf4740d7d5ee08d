// Package migrations embeds the goose SQL migrations so that cmd/migrate and
// the integration test helper apply exactly the same schema.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
