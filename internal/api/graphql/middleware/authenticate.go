package middleware

import (
	"net/http"

	"github.com/dtroode/itemgraph/internal/logger"
	"github.com/dtroode/itemgraph/internal/model"
)

// AuthObserver counts resolved identities.
type AuthObserver interface {
	ObserveAuth(authenticated, superuser bool)
}

// Authenticate resolves the Authorization header once per request and stores
// the resulting Auth in the request context. It never rejects a request.
type Authenticate struct {
	authService    model.AuthService
	contextManager model.ContextManager
	observer       AuthObserver
	logger         *logger.Logger
}

func NewAuthenticate(
	authService model.AuthService,
	contextManager model.ContextManager,
	observer AuthObserver,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		authService:    authService,
		contextManager: contextManager,
		observer:       observer,
		logger:         logger,
	}
}

func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := m.authService.Resolve(r.Context(), r.Header.Get("Authorization"))
		m.observer.ObserveAuth(auth.Authenticated, auth.IsSuperuser())

		m.logger.Debug("resolved request identity",
			"auth", auth.String(),
			"request_id", w.Header().Get(RequestIDHeader))

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetAuthToContext(r.Context(), auth)))
	})
}
