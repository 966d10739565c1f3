package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

// MonitoringStats is the latest snapshot shown by the debug server.
type MonitoringStats struct {
	RSSBytes    uint64    `json:"rss_bytes"`
	CPUPercent  float64   `json:"cpu_percent"`
	LSMBytes    int64     `json:"lsm_bytes"`
	VLogBytes   int64     `json:"vlog_bytes"`
	Requests    uint64    `json:"requests"`
	FailedCalls uint64    `json:"failed_calls"`
	SampledAt   time.Time `json:"sampled_at"`
}

// MonitoringManager keeps request counters and the last heartbeat sample.
type MonitoringManager struct {
	mu          sync.RWMutex
	latestStats MonitoringStats

	requests    uint64
	failedCalls uint64
}

func NewMonitoringManager() *MonitoringManager {
	return &MonitoringManager{}
}

func (mm *MonitoringManager) IncrRequests() {
	atomic.AddUint64(&mm.requests, 1)
}

func (mm *MonitoringManager) IncrFailedCalls() {
	atomic.AddUint64(&mm.failedCalls, 1)
}

// Record stores a heartbeat sample. Counters are filled in by GetLatest.
func (mm *MonitoringManager) Record(stats MonitoringStats) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats = stats
}

// GetLatest returns the last sample together with the live counters.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	stats := mm.latestStats
	mm.mu.RUnlock()
	stats.Requests = atomic.LoadUint64(&mm.requests)
	stats.FailedCalls = atomic.LoadUint64(&mm.failedCalls)
	return stats
}

// AsMap flattens the latest stats for the inspect page.
func (mm *MonitoringManager) AsMap() map[string]any {
	stats := mm.GetLatest()
	sampledAt := "never"
	if !stats.SampledAt.IsZero() {
		sampledAt = stats.SampledAt.Format(time.RFC3339)
	}
	return map[string]any{
		"Requests":     stats.Requests,
		"Failed calls": stats.FailedCalls,
		"RSS (bytes)":  stats.RSSBytes,
		"CPU (%)":      stats.CPUPercent,
		"LSM (bytes)":  stats.LSMBytes,
		"VLog (bytes)": stats.VLogBytes,
		"Sampled at":   sampledAt,
	}
}
