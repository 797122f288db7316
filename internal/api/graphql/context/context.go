package context

import (
	"context"

	"github.com/dtroode/itemgraph/internal/model"
)

type ctxKey int

const (
	authKey ctxKey = iota
	requestIDKey
)

// Manager carries the resolved Auth and the request id through an HTTP request context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetAuthToContext returns a copy of ctx carrying auth.
func (m *Manager) SetAuthToContext(ctx context.Context, auth model.Auth) context.Context {
	return context.WithValue(ctx, authKey, auth)
}

// GetAuthFromContext returns the Auth stored in ctx, or an anonymous Auth if none was set.
func (m *Manager) GetAuthFromContext(ctx context.Context) model.Auth {
	auth, ok := ctx.Value(authKey).(model.Auth)
	if !ok {
		return model.Anonymous()
	}
	return auth
}

func (m *Manager) SetRequestIDToContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func (m *Manager) GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
