// Package migrations embeds the goose SQL migrations for both services.
package migrations

import "embed"

//go:embed events/*.sql sales/*.sql
var FS embed.FS
