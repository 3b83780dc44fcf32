package utils

import "time"

// HealthCheckInterval is how often the health monitor pings Mongo and Redis.
const HealthCheckInterval = 30 * time.Second

// ShutdownTimeout bounds graceful server shutdown.
const ShutdownTimeout = 5 * time.Second
