package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ogfinder/config"
	logs "ogfinder/internal/infra/log"
	"ogfinder/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:      apply all pending migrations
// - down:    roll back every migration
// - version: print the applied schema version

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(command string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	migrator := postgres.NewMigrator(sqlDB, logger)

	switch command {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		logger.Info("Schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		fmt.Printf("version=%d dirty=%t\n", version, dirty)

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|version>")
	fmt.Fprintln(os.Stderr, "Connection settings come from config.yaml, .env and DATABASE_URL.")
}
