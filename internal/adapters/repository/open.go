package repository

import (
	"context"
	"fmt"

	"github.com/ogurasousui/restaurant-payroll/internal/adapters/repository/postgres"
	"github.com/ogurasousui/restaurant-payroll/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/restaurant-payroll/internal/core/employee"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/config"
	pg "github.com/ogurasousui/restaurant-payroll/internal/platform/db/postgres"
	sqlitedb "github.com/ogurasousui/restaurant-payroll/internal/platform/db/sqlite"
	"go.uber.org/zap"
)

// Open は database.driver に応じた employee.Repository を構築します。
// 返される close 関数でコネクションを解放してください。
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (employee.Repository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		pool, err := pg.NewPool(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewEmployeeRepository(pool), pool.Close, nil
	case config.DriverSQLite:
		db, err := sqlitedb.Open(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := sqlitedb.Close(db); err != nil && logger != nil {
				logger.Warn("close sqlite failed", zap.Error(err))
			}
		}
		return sqlite.NewEmployeeRepository(db), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("repository: unsupported driver %q", cfg.Driver)
	}
}
