package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/restaurant-payroll/internal/platform/contextutil"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader はリクエスト ID を受け渡すメタデータのキーです。
const RequestIDHeader = "x-request-id"

// UnaryRequestLogger はリクエスト ID を採番し、リクエスト単位のロガーと共にコンテキストへ格納します。
// 受信メタデータに UUID 形式の ID があればそれを引き継ぎます。
func UnaryRequestLogger(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		reqLogger := logger.With(zap.String("request_id", requestID), zap.String("method", info.FullMethod))
		ctx = contextutil.WithRequestID(ctx, requestID)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		start := time.Now()
		resp, err := next(ctx, req)

		fields := []zap.Field{
			zap.String("code", status.Code(err).String()),
			zap.Duration("elapsed", time.Since(start)),
		}
		if err != nil {
			reqLogger.Warn("rpc failed", append(fields, zap.Error(err))...)
		} else {
			reqLogger.Info("rpc finished", fields...)
		}
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get(RequestIDHeader) {
		if id, err := uuid.Parse(v); err == nil {
			return id.String()
		}
	}
	return ""
}
