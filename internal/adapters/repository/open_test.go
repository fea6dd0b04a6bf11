package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ogurasousui/restaurant-payroll/internal/platform/config"
)

func TestOpen_SQLite(t *testing.T) {
	t.Parallel()

	repo, closeFn, err := Open(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "payroll.db"),
	}, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer closeFn()

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema returned error: %v", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	if _, _, err := Open(context.Background(), config.DatabaseConfig{Driver: "mssql"}, nil); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
