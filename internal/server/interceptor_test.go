package server

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/agrosuivi/farmdesk/internal/common"
)

func TestRequestLoggerTagsContext(t *testing.T) {
	interceptor := RequestLogger(slog.New(slog.DiscardHandler))
	info := &grpc.UnaryServerInfo{FullMethod: "/farmdesk.v1.FarmsService/GetFarm"}

	var seen string
	resp, err := interceptor(context.Background(), "req", info,
		func(ctx context.Context, req any) (any, error) {
			seen = common.RequestIDFromContext(ctx)
			return "ok", nil
		})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.NotEmpty(t, seen)
}

func TestRequestLoggerPassesHandlerError(t *testing.T) {
	interceptor := RequestLogger(slog.New(slog.DiscardHandler))
	info := &grpc.UnaryServerInfo{FullMethod: "/farmdesk.v1.FarmsService/GetFarm"}

	wantErr := errors.New("boom")
	_, err := interceptor(context.Background(), "req", info,
		func(ctx context.Context, req any) (any, error) {
			return nil, wantErr
		})
	assert.ErrorIs(t, err, wantErr)
}
