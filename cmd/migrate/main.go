package main

import (
	"flag"
	"fmt"
	"os"

	// Postgres driver for golang-migrate
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/config"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/logger"
	"github.com/sergey87kuzin/stripe-payments/internal/infrastructure/migration"
)

func main() {
	var (
		command        = flag.String("command", "up", "Migration command: up, down, steps, version, force")
		steps          = flag.Int("steps", 0, "Number of steps for the steps command")
		forceVersion   = flag.Int("force-version", -1, "Version for the force command")
		migrationsPath = flag.String("path", "migrations", "Path to migration files")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	m, err := migration.NewFromURL(cfg.Database.DSN(), *migrationsPath, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() { _ = m.Close() }()

	switch *command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		err = m.Steps(*steps)
	case "version":
		var version uint
		var dirty bool
		version, dirty, err = m.Version()
		if err == nil {
			log.Info("Current migration version",
				zap.Uint("version", version),
				zap.Bool("dirty", dirty))
		}
	case "force":
		if *forceVersion < 0 {
			log.Fatal("force command requires -force-version")
		}
		err = m.Force(*forceVersion)
	default:
		log.Fatal("Unknown command", zap.String("command", *command))
	}

	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
}
