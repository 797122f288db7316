package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/itemgraph/internal/api/grpc/middleware"
	"github.com/dtroode/itemgraph/internal/logger"
)

// Router builds the operational gRPC server: health and reflection.
type Router struct {
	health *health.Server
	logger *logger.Logger
}

func New(healthServer *health.Server, logger *logger.Logger) *Router {
	return &Router{
		health: healthServer,
		logger: logger,
	}
}

// Health checks are polled frequently and stay out of the request log.
func logSkip(_ context.Context, c interceptors.CallMeta) bool {
	return c.FullMethod() != healthpb.Health_Check_FullMethodName
}

// Register creates the server with logging and panic recovery interceptors.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoverer := middleware.NewRecovery(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			selector.UnaryServerInterceptor(logging.HandleGRPC, selector.MatchFunc(logSkip)),
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoverer.Handle)),
		),
		grpc.ChainStreamInterceptor(
			logging.HandleGRPCStream,
			recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(recoverer.Handle)),
		),
	)
	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}
