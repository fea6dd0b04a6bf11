package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewQueryTracer は pgx のトレースを zap へ流す pgx.QueryTracer を返します。
func NewQueryTracer(logger *zap.Logger) *tracelog.TraceLog {
	named := logger.Named("pgx")
	return &tracelog.TraceLog{
		Logger: tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
			fields := make([]zap.Field, 0, len(data))
			for k, v := range data {
				fields = append(fields, zap.Any(k, v))
			}
			if ce := named.Check(zapLevel(level), msg); ce != nil {
				ce.Write(fields...)
			}
		}),
		LogLevel: tracelog.LogLevelDebug,
	}
}

func zapLevel(level tracelog.LogLevel) zapcore.Level {
	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		return zapcore.DebugLevel
	case tracelog.LogLevelInfo:
		return zapcore.InfoLevel
	case tracelog.LogLevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
