package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/splithouse/receipts-engine/internal/common"
)

// UnaryRequestID tags every request with an id (client-supplied x-request-id
// or a fresh UUID) and logs method timing.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get("x-request-id"); len(vals) > 0 {
				requestID = vals[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("rpc ok",
			"method", info.FullMethod,
			"request_id", requestID,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}
