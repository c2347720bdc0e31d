package grpc

import (
	"context"
	"time"

	"roomrent-backend/internal/logger"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker keeps the standard gRPC health service in step with the
// database: SERVING while pings succeed, NOT_SERVING otherwise.
type HealthChecker struct {
	server   *health.Server
	db       Pinger
	interval time.Duration
	timeout  time.Duration
}

func NewHealthChecker(db Pinger, interval time.Duration) *HealthChecker {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthChecker{
		server:   srv,
		db:       db,
		interval: interval,
		timeout:  2 * time.Second,
	}
}

// Server returns the health service to register on a grpc.Server.
func (h *HealthChecker) Server() *health.Server {
	return h.server
}

// Probe pings the database once and publishes the result.
func (h *HealthChecker) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.db.Ping(ctx); err != nil {
		logger.Warn("Database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", status)
	return status
}

// Run probes on every tick until ctx is done, then marks the service as
// shutting down.
func (h *HealthChecker) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}
