package model

import "context"

// ContextManager carries the resolved Auth through a request context.
type ContextManager interface {
	SetAuthToContext(ctx context.Context, auth Auth) context.Context
	GetAuthFromContext(ctx context.Context) Auth
}
