// migrate aplica las migraciones SQL embebidas (goose) contra PostgreSQL.
//
// Uso: go run ./cmd/migrate [up|down|status]
// Por defecto ejecuta "up". La conexión se toma de la misma configuración de
// la app (DATABASE_URL o DB_HOST, DB_PORT, etc.).
package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/restock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/restock-api/pkg/config"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir conexión: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(postgres.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		fmt.Fprintf(os.Stderr, "dialecto goose: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "up":
		err = goose.Up(db, "migrations")
	case "down":
		err = goose.Down(db, "migrations")
	case "status":
		err = goose.Status(db, "migrations")
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido: %s (up|down|status)\n", command)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrar: %v\n", err)
		os.Exit(1)
	}
}
