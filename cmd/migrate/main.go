package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/clientes/backend/internal/infrastructure/config"
	"github.com/clientes/backend/internal/infrastructure/logger"
	"github.com/clientes/backend/internal/infrastructure/migration"
	"github.com/clientes/backend/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// command is one migrate subcommand. Commands without a migrator work on
// migration files only and never connect to the database.
type command struct {
	usage    string
	args     int
	offline  func(app *app, args []string) error
	database func(m *migration.Migrator, log *zap.Logger, args []string) error
}

type app struct {
	log    *zap.Logger
	path   string
	source fs.FS
}

var commands = map[string]command{
	"up": {
		usage: "up",
		database: func(m *migration.Migrator, _ *zap.Logger, _ []string) error {
			return m.Up()
		},
	},
	"down": {
		usage: "down",
		database: func(m *migration.Migrator, _ *zap.Logger, _ []string) error {
			return m.Down()
		},
	},
	"step": {
		usage: "step <n>",
		args:  1,
		database: func(m *migration.Migrator, _ *zap.Logger, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			return m.Steps(n)
		},
	},
	"version": {
		usage: "version",
		database: func(m *migration.Migrator, log *zap.Logger, _ []string) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			if version == 0 {
				log.Info("No migrations applied")
				return nil
			}
			log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
			return nil
		},
	},
	"force": {
		usage: "force <version>",
		args:  1,
		database: func(m *migration.Migrator, _ *zap.Logger, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return m.Force(version)
		},
	},
	"create": {
		usage:   "create <name> [description]",
		args:    1,
		offline: createMigration,
	},
	"list": {
		usage:   "list",
		offline: listMigrations,
	},
}

func main() {
	path := flag.String("path", "", "Migrations directory (default: the migrations embedded in the binary)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	if len(args)-1 < cmd.args {
		fmt.Fprintf(os.Stderr, "usage: migrate %s\n", cmd.usage)
		os.Exit(2)
	}

	log, err := logger.New(&logger.Config{
		Level:      *logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	a := &app{log: log, path: *path, source: migrations.FS}
	if *path != "" {
		a.source = os.DirFS(*path)
	}

	if cmd.offline != nil {
		err = cmd.offline(a, args[1:])
	} else {
		err = a.withMigrator(func(m *migration.Migrator) error {
			return cmd.database(m, log, args[1:])
		})
	}
	_ = log.Sync()
	if err != nil {
		log.Error("Migration command failed", zap.String("command", args[0]), zap.Error(err))
		if errors.Is(err, migration.ErrDirty) {
			log.Info("Repair the schema, then run: migrate force <version>")
		}
		os.Exit(1)
	}
}

// withMigrator connects with the configured PostgreSQL settings and runs fn
func (a *app) withMigrator(fn func(m *migration.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("SQL migrations only run against PostgreSQL, driver is %q; SQLite is migrated by the server at startup",
			cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := migration.New(db, a.source, a.log)
	if err != nil {
		_ = db.Close()
		return err
	}
	// Close releases db as well
	defer func() { _ = m.Close() }()

	return fn(m)
}

func createMigration(a *app, args []string) error {
	dir := a.path
	if dir == "" {
		dir = "migrations"
	}
	description := ""
	if len(args) > 1 {
		description = args[1]
	}

	mf, err := migration.CreateMigration(dir, args[0], description)
	if err != nil {
		return err
	}
	a.log.Info("Migration created",
		zap.String("version", mf.Version),
		zap.String("up_file", mf.UpPath),
		zap.String("down_file", mf.DownPath),
	)
	return nil
}

func listMigrations(a *app, _ []string) error {
	names, err := migration.ListMigrations(a.source)
	if err != nil {
		return err
	}
	a.log.Info("Available migrations", zap.Int("count", len(names)))
	for _, name := range names {
		fmt.Println("  -", name)
	}
	return nil
}

func printUsage() {
	fmt.Println(`Clientes database migration tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (positive=up, negative=down)
  version               Show current migration version
  force <version>       Record a version as applied and clear the dirty flag
  create <name> [desc]  Create a new migration file pair
  list                  List available migrations

Flags:
  -path string          Migrations directory (default: embedded migrations)
  -log-level string     Log level: debug, info, warn, error (default: info)

Connection settings come from config.toml or CLIENTES_DATABASE_* variables.`)
}
