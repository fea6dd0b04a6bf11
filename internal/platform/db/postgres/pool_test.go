package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	dbCfg := config.DatabaseConfig{
		Host:            "localhost",
		Port:            15432,
		User:            "user",
		Password:        "pass",
		Name:            "payroll",
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}

	poolCfg, err := BuildPoolConfig(dbCfg, nil)
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != 20 {
		t.Errorf("expected MaxConns 20, got %d", poolCfg.MaxConns)
	}

	if poolCfg.MinConns != 5 {
		t.Errorf("expected MinConns 5, got %d", poolCfg.MinConns)
	}

	if poolCfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime: %v", poolCfg.MaxConnLifetime)
	}

	if poolCfg.MaxConnIdleTime != 10*time.Minute {
		t.Errorf("unexpected MaxConnIdleTime: %v", poolCfg.MaxConnIdleTime)
	}

	if poolCfg.ConnConfig.Database != "payroll" {
		t.Errorf("expected database payroll, got %s", poolCfg.ConnConfig.Database)
	}

	if got := poolCfg.ConnConfig.RuntimeParams["application_name"]; got != applicationName {
		t.Errorf("expected application_name %s, got %s", applicationName, got)
	}

	if poolCfg.ConnConfig.Tracer != nil {
		t.Errorf("expected no tracer when trace_queries is off")
	}
}

func TestBuildPoolConfig_TraceQueries(t *testing.T) {
	t.Parallel()

	dbCfg := config.DatabaseConfig{
		Host:         "localhost",
		Port:         5432,
		User:         "user",
		Password:     "pass",
		Name:         "payroll",
		SSLMode:      "disable",
		TraceQueries: true,
	}

	poolCfg, err := BuildPoolConfig(dbCfg, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}
	if poolCfg.ConnConfig.Tracer == nil {
		t.Fatal("expected tracer to be installed")
	}
}

func TestZapLevel(t *testing.T) {
	t.Parallel()

	cases := map[tracelog.LogLevel]zapcore.Level{
		tracelog.LogLevelTrace: zapcore.DebugLevel,
		tracelog.LogLevelDebug: zapcore.DebugLevel,
		tracelog.LogLevelInfo:  zapcore.InfoLevel,
		tracelog.LogLevelWarn:  zapcore.WarnLevel,
		tracelog.LogLevelError: zapcore.ErrorLevel,
	}
	for in, want := range cases {
		if got := zapLevel(in); got != want {
			t.Errorf("zapLevel(%v) = %v, want %v", in, got, want)
		}
	}
}
