package sqlite

import (
	"fmt"
	"time"

	"github.com/ogurasousui/restaurant-payroll/internal/platform/config"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// zapWriter は gorm のログ出力を zap に流します。
type zapWriter struct {
	sugar *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.sugar.Debugf(format, args...)
}

// Open は database.path の SQLite を GORM で開きます。
func Open(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	level := gormlogger.Warn
	if cfg.TraceQueries {
		level = gormlogger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.New(zapWriter{sugar: logger.Named("gorm").Sugar()}, gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: underlying db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	return db, nil
}

// Close は GORM が保持するコネクションを解放します。
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
