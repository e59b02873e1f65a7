package postgres

import "embed"

// Migrations contiene los archivos SQL de goose embebidos en el binario.
// Se aplican con cmd/migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
