package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/agrosuivi/farmdesk/internal/common"
)

// RequestLogger returns a unary interceptor that tags every call with a
// request ID and logs its outcome. Handlers recover the ID with
// common.RequestIDFromContext.
func RequestLogger(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)
		start := time.Now()
		resp, err := handler(ctx, req)
		log := logger.With(
			"request_id", requestID,
			"method", info.FullMethod,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if err != nil {
			log.Warn("grpc.request.failed", "code", status.Code(err).String(), "error", err)
			return resp, err
		}
		log.Info("grpc.request.done")
		return resp, nil
	}
}
