// Package migrations embeds the goose migration sets for the cache database,
// one per supported backend.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SQLite embed.FS

//go:embed postgres/*.sql
var Postgres embed.FS
