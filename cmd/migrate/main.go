// migrate aplica las migraciones embebidas de PostgreSQL.
//
// Uso: go run ./cmd/migrate [up|down|status]
// Sin argumento ejecuta "up". La conexión se toma de DATABASE_URL o DB_*.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/courier-api/internal/infrastructure/postgres"
	"github.com/jhoicas/courier-api/pkg/config"
	"github.com/jhoicas/courier-api/pkg/logger"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, command); err != nil {
		pool.Close()
		log.Fatal().Err(err).Str("command", command).Msg("migraciones")
	}
	log.Info().Str("command", command).Msg("migraciones completadas")
}
