package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything whose reachability can be checked.
type Pinger func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor periodically pings Mongo and Redis and keeps the latest snapshot.
type HealthMonitor struct {
	mongo    Pinger
	redis    Pinger
	interval time.Duration
	logger   *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor creates a monitor that checks every interval.
func NewHealthMonitor(mongo, redis Pinger, interval time.Duration, logger *zap.Logger) *HealthMonitor {
	return &HealthMonitor{mongo: mongo, redis: redis, interval: interval, logger: logger}
}

// Status returns the latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings both services once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     m.mongo(ctx) == nil,
		Redis:     m.redis(ctx) == nil,
		CheckedAt: time.Now(),
	}
	if !status.Mongo || !status.Redis {
		m.logger.Warn("Dependency health check failed",
			zap.Bool("mongo", status.Mongo), zap.Bool("redis", status.Redis))
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start runs an immediate check and then one per interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
