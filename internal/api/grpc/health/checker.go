// Package health keeps the gRPC health service in step with database reachability.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/itemgraph/internal/logger"
)

// ServiceName is reported next to the overall ("") status.
const ServiceName = "itemgraph.GraphQL"

const pingTimeout = 2 * time.Second

// Pinger reports storage reachability. A nil Pinger is always healthy.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabaseObserver records the outcome of every check.
type DatabaseObserver interface {
	SetDatabaseUp(up bool)
}

// Checker pings the database periodically and publishes the result.
type Checker struct {
	server   *health.Server
	pinger   Pinger
	observer DatabaseObserver
	interval time.Duration
	logger   *logger.Logger
}

func NewChecker(
	server *health.Server,
	pinger Pinger,
	observer DatabaseObserver,
	interval time.Duration,
	logger *logger.Logger,
) *Checker {
	return &Checker{
		server:   server,
		pinger:   pinger,
		observer: observer,
		interval: interval,
		logger:   logger,
	}
}

// Check runs one ping and returns whether the service is serving.
func (c *Checker) Check(ctx context.Context) bool {
	up := true
	if c.pinger != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := c.pinger.Ping(pingCtx)
		cancel()
		if err != nil {
			c.logger.Warn("Health checker: database ping failed", "error", err.Error())
			up = false
		}
	}

	status := healthpb.HealthCheckResponse_SERVING
	if !up {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
	c.observer.SetDatabaseUp(up)

	return up
}

// Run checks immediately and then every interval until ctx is done.
// On return every service is reported NOT_SERVING.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			c.logger.Debug("Health checker: stopped")
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}
