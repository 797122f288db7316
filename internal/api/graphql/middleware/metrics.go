package middleware

import (
	"net/http"
	"time"
)

// HTTPObserver records per-request metrics.
type HTTPObserver interface {
	ObserveHTTP(path, method string, code int, elapsed time.Duration)
}

type Metrics struct {
	observer HTTPObserver
}

func NewMetrics(observer HTTPObserver) *Metrics {
	return &Metrics{observer: observer}
}

func (m *Metrics) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := wrap(w)

		next.ServeHTTP(rec, r)

		m.observer.ObserveHTTP(r.URL.Path, r.Method, rec.status, time.Since(start))
	})
}
