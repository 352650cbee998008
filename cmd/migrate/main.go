package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/plaudstore/backend/internal/infrastructure/config"
	"github.com/plaudstore/backend/internal/infrastructure/logger"
	"github.com/plaudstore/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

func main() {
	var (
		command      = flag.String("command", "up", "migration command: up, down, steps, version, force")
		steps        = flag.Int("steps", 0, "number of steps for the steps command (negative = down)")
		forceVersion = flag.Int("force-version", -1, "version for the force command")
		path         = flag.String("path", "migrations", "path to migration files")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stderr",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	if !cfg.Datastore.Configured() {
		log.Fatal("datastore is not configured; set SHOP_DATASTORE_URL and SHOP_DATASTORE_SERVICE_KEY")
	}

	dsn, err := cfg.Datastore.DSN()
	if err != nil {
		log.Fatal("invalid datastore configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("failed to open datastore connection", zap.Error(err))
	}
	defer db.Close()

	migrator, err := migration.New(db, *path, log)
	if err != nil {
		log.Fatal("failed to create migrator", zap.Error(err))
	}
	defer migrator.Close()

	switch *command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "steps":
		if *steps == 0 {
			log.Fatal("steps command requires a non-zero -steps value")
		}
		err = migrator.Steps(*steps)
	case "version":
		version, dirty, verr := migrator.Version()
		if verr != nil {
			log.Fatal("failed to read version", zap.Error(verr))
		}
		log.Info("current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
	case "force":
		if *forceVersion < 0 {
			log.Fatal("force command requires -force-version")
		}
		err = migrator.Force(*forceVersion)
	default:
		log.Fatal("unknown command", zap.String("command", *command))
	}

	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
}
