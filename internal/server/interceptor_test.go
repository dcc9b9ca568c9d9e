package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/splithouse/receipts-engine/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUnaryRequestIDGeneratesID(t *testing.T) {
	var captured string
	handler := func(ctx context.Context, _ any) (any, error) {
		captured = common.RequestIDFromContext(ctx)
		return "ok", nil
	}

	ic := UnaryRequestID(testLogger())
	resp, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test/Method"}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.NotEmpty(t, captured)
}

func TestUnaryRequestIDHonorsClientHeader(t *testing.T) {
	var captured string
	handler := func(ctx context.Context, _ any) (any, error) {
		captured = common.RequestIDFromContext(ctx)
		return nil, nil
	}

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("x-request-id", "req-123"))

	ic := UnaryRequestID(testLogger())
	_, err := ic(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test/Method"}, handler)
	require.NoError(t, err)
	assert.Equal(t, "req-123", captured)
}
