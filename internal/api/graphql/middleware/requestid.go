package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// RequestIDSetter stores the request id in a context.
type RequestIDSetter interface {
	SetRequestIDToContext(ctx context.Context, id string) context.Context
}

// RequestID assigns every request an id, keeping a client-supplied one when it is a valid UUID.
type RequestID struct {
	contextManager RequestIDSetter
}

func NewRequestID(contextManager RequestIDSetter) *RequestID {
	return &RequestID{contextManager: contextManager}
}

func (m *RequestID) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(m.contextManager.SetRequestIDToContext(r.Context(), id)))
	})
}
