package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	"github.com/ogurasousui/restaurant-payroll/assets"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/config"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/logging"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	var (
		configPath    = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = flag.String("dir", "", "directory containing migration files (defaults to the embedded migrations)")
	)
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Database.Driver != config.DriverPostgres {
		logger.Fatal("migrations are only supported for postgres; sqlite creates its table on startup",
			zap.String("driver", cfg.Database.Driver))
	}

	m, err := newMigrate(*migrationsDir, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("create migrate instance failed", zap.Error(err))
	}
	defer m.Close()

	if err := runMigration(m, action, logger); err != nil {
		logger.Fatal("migration failed", zap.String("action", action), zap.Error(err))
	}

	logger.Info("migration completed", zap.String("action", action))
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func newMigrate(dir, dsn string) (*migrate.Migrate, error) {
	if dir == "" {
		src, err := iofs.New(assets.Migrations, assets.MigrationsDir)
		if err != nil {
			return nil, fmt.Errorf("open embedded migrations: %w", err)
		}
		return migrate.NewWithSourceInstance("iofs", src, dsn)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	return migrate.New("file://"+filepath.ToSlash(absDir), dsn)
}

func runMigration(m *migrate.Migrate, action string, logger *zap.Logger) error {
	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				logger.Info("no migration applied")
				return nil
			}
			return err
		}
		logger.Info("current version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
