package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	gqlctx "github.com/dtroode/itemgraph/internal/api/graphql/context"
	"github.com/dtroode/itemgraph/internal/api/graphql/middleware"
	"github.com/dtroode/itemgraph/internal/logger"
	"github.com/dtroode/itemgraph/internal/metrics"
	"github.com/dtroode/itemgraph/internal/model"
)

// Pinger reports storage reachability. A nil Pinger is always healthy.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router wires the GraphQL endpoint and the operational endpoints.
type Router struct {
	schema         *graphql.Schema
	authService    model.AuthService
	contextManager *gqlctx.Manager
	metrics        *metrics.Metrics
	pinger         Pinger
	logger         *logger.Logger
}

func New(
	schema *graphql.Schema,
	authService model.AuthService,
	contextManager *gqlctx.Manager,
	metrics *metrics.Metrics,
	pinger Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		schema:         schema,
		authService:    authService,
		contextManager: contextManager,
		metrics:        metrics,
		pinger:         pinger,
		logger:         logger,
	}
}

// Register builds the handler tree. Middleware order: request id, logging,
// metrics, then identity resolution for /graphql only.
func (r *Router) Register() http.Handler {
	requestID := middleware.NewRequestID(r.contextManager)
	logging := middleware.NewLogging(r.logger)
	mtr := middleware.NewMetrics(r.metrics)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.metrics, r.logger)

	mux := http.NewServeMux()
	mux.Handle("POST /graphql", authenticate.Handle(&relay.Handler{Schema: r.schema}))
	mux.HandleFunc("GET /healthz", r.healthz)
	mux.Handle("GET /metrics", r.metrics.Handler())

	return requestID.Handle(logging.Handle(mtr.Handle(mux)))
}

func (r *Router) healthz(w http.ResponseWriter, req *http.Request) {
	status, code := "ok", http.StatusOK
	if r.pinger != nil {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := r.pinger.Ping(ctx); err != nil {
			r.logger.Warn("health check failed", "error", err.Error())
			status, code = "unavailable", http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}
