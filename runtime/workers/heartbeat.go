package workers

import (
	"context"
	"log/slog"
	"message-board/observability"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker samples process and store sizes on every tick, logs them
// and publishes them to the monitoring manager and Prometheus.
type HeartbeatWorker struct {
	log        *slog.Logger
	db         *badger.DB
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHeartbeatWorker(
	log *slog.Logger,
	db *badger.DB,
	monitoring *observability.MonitoringManager,
	interval time.Duration,
) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, db: db, monitoring: monitoring, interval: interval}
}

func (w *HeartbeatWorker) Name() string {
	return "heartbeat"
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stats, err := w.sample(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.monitoring.Record(stats)
			observability.PublishHeartbeat(stats)
			w.log.Debug("Heartbeat",
				"rss_bytes", stats.RSSBytes,
				"cpu_percent", stats.CPUPercent,
				"lsm_bytes", stats.LSMBytes,
				"vlog_bytes", stats.VLogBytes)
		}
	}
}

func (w *HeartbeatWorker) sample(p *process.Process) (observability.MonitoringStats, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return observability.MonitoringStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return observability.MonitoringStats{}, err
	}
	lsm, vlog := w.db.Size()
	return observability.MonitoringStats{
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPercent,
		LSMBytes:   lsm,
		VLogBytes:  vlog,
		SampledAt:  time.Now().UTC(),
	}, nil
}
