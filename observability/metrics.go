package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	grpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messageboard_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	grpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "messageboard_grpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method"},
	)

	processCPUPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "messageboard_process_cpu_percent",
			Help: "CPU usage of the server process as sampled by the heartbeat",
		},
	)

	badgerLSMBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "messageboard_badger_lsm_size_bytes",
			Help: "Size of the Badger LSM tree",
		},
	)

	badgerVLogBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "messageboard_badger_vlog_size_bytes",
			Help: "Size of the Badger value log",
		},
	)
)

// PublishHeartbeat exports a heartbeat sample as gauges.
func PublishHeartbeat(stats MonitoringStats) {
	processCPUPercent.Set(stats.CPUPercent)
	badgerLSMBytes.Set(float64(stats.LSMBytes))
	badgerVLogBytes.Set(float64(stats.VLogBytes))
}

// UnaryServerInterceptor logs every call and records its outcome.
func UnaryServerInterceptor(log *slog.Logger, monitoring *MonitoringManager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)
		code := status.Code(err)

		grpcRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
		grpcRequestDuration.WithLabelValues(info.FullMethod).Observe(elapsed.Seconds())
		monitoring.IncrRequests()

		if err != nil {
			monitoring.IncrFailedCalls()
			log.Warn("gRPC call failed", "method", info.FullMethod, "code", code.String(), "duration", elapsed, "error", err)
			return resp, err
		}
		log.Debug("gRPC call", "method", info.FullMethod, "code", code.String(), "duration", elapsed)
		return resp, nil
	}
}
