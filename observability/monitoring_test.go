package observability

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMonitoringManager_GetLatestMergesCounters(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager()
	sampledAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mm.Record(MonitoringStats{RSSBytes: 42, Requests: 99, SampledAt: sampledAt})
	mm.IncrRequests()
	mm.IncrRequests()
	mm.IncrFailedCalls()

	stats := mm.GetLatest()
	req.Equal(uint64(42), stats.RSSBytes)
	req.Equal(uint64(2), stats.Requests)
	req.Equal(uint64(1), stats.FailedCalls)
	req.Equal("2024-01-02T03:04:05Z", mm.AsMap()["Sampled at"])
}

func TestMonitoringManager_NeverSampled(t *testing.T) {
	require.Equal(t, "never", NewMonitoringManager().AsMap()["Sampled at"])
}

func TestUnaryServerInterceptor_CountsFailures(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager()
	interceptor := UnaryServerInterceptor(slog.Default(), mm)
	info := &grpc.UnaryServerInfo{FullMethod: "/messageboard.v1.MessageService/GetMessage"}

	resp, err := interceptor(context.Background(), "in", info, func(ctx context.Context, req any) (any, error) {
		return "out", nil
	})
	req.NoError(err)
	req.Equal("out", resp)

	_, err = interceptor(context.Background(), "in", info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})
	req.Equal(codes.NotFound, status.Code(err))

	stats := mm.GetLatest()
	req.Equal(uint64(2), stats.Requests)
	req.Equal(uint64(1), stats.FailedCalls)
}
