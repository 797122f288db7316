package health

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/itemgraph/internal/testutil"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type upRecorder struct {
	mu  sync.Mutex
	ups []bool
}

func (r *upRecorder) SetDatabaseUp(up bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ups = append(r.ups, up)
}

func (r *upRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ups)
}

func status(t *testing.T, s *health.Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := s.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestChecker_Check(t *testing.T) {
	tests := []struct {
		name   string
		pinger Pinger
		want   healthpb.HealthCheckResponse_ServingStatus
		wantUp bool
	}{
		{
			name:   "no database",
			want:   healthpb.HealthCheckResponse_SERVING,
			wantUp: true,
		},
		{
			name:   "database reachable",
			pinger: pingerFunc(func(ctx context.Context) error { return nil }),
			want:   healthpb.HealthCheckResponse_SERVING,
			wantUp: true,
		},
		{
			name:   "database down",
			pinger: pingerFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
			want:   healthpb.HealthCheckResponse_NOT_SERVING,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := health.NewServer()
			rec := &upRecorder{}
			c := NewChecker(srv, tt.pinger, rec, time.Minute, testutil.MakeNoopLogger())

			got := c.Check(context.Background())

			assert.Equal(t, tt.wantUp, got)
			assert.Equal(t, tt.want, status(t, srv, ""))
			assert.Equal(t, tt.want, status(t, srv, ServiceName))
			assert.Equal(t, []bool{tt.wantUp}, rec.ups)
		})
	}
}

func TestChecker_Run(t *testing.T) {
	srv := health.NewServer()
	rec := &upRecorder{}
	c := NewChecker(srv, nil, rec, 5*time.Millisecond, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return rec.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("checker did not stop")
	}
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, srv, ""))
}
