// Package db carries the embedded SQL migrations applied with goose at
// startup.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
