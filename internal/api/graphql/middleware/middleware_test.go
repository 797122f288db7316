package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	gqlctx "github.com/dtroode/itemgraph/internal/api/graphql/context"
	"github.com/dtroode/itemgraph/internal/mocks"
	"github.com/dtroode/itemgraph/internal/model"
	"github.com/dtroode/itemgraph/internal/testutil"
)

type observerStub struct {
	paths []string
	codes []int
	auths []bool
}

func (o *observerStub) ObserveHTTP(path, method string, code int, elapsed time.Duration) {
	o.paths = append(o.paths, path)
	o.codes = append(o.codes, code)
}

func (o *observerStub) ObserveAuth(authenticated, superuser bool) {
	o.auths = append(o.auths, authenticated)
}

func TestRequestID_Handle(t *testing.T) {
	t.Parallel()

	ctxMgr := gqlctx.NewManager()
	mw := NewRequestID(ctxMgr)

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing"},
		{name: "generated when invalid", incoming: "not-a-uuid"},
		{name: "kept when valid", incoming: uuid.NewString(), keep: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := mw.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = ctxMgr.GetRequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			assert.Equal(t, got, seen)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			}
		})
	}
}

func TestMetrics_Handle_RecordsStatus(t *testing.T) {
	t.Parallel()

	obs := &observerStub{}
	h := NewMetrics(obs).Handle(NewLogging(testutil.MakeNoopLogger()).Handle(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Len(t, obs.codes, 1)
	assert.Equal(t, http.StatusTeapot, obs.codes[0])
	assert.Equal(t, "/healthz", obs.paths[0])
}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	authService := mocks.NewAuthService(t)
	ctxMgr := gqlctx.NewManager()
	obs := &observerStub{}
	user := model.User{ID: 3, Email: "susi@example.com", IsSuperuser: true}

	authService.On("Resolve", mock.Anything, "Bearer tok").Return(model.Authenticated(user)).Once()
	authService.On("Resolve", mock.Anything, "").Return(model.Anonymous()).Once()

	var got []model.Auth
	h := NewAuthenticate(authService, ctxMgr, obs, testutil.MakeNoopLogger()).Handle(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = append(got, ctxMgr.GetAuthFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "anonymous requests are never rejected")

	require.Len(t, got, 2)
	assert.True(t, got[0].IsSuperuser())
	assert.False(t, got[1].Authenticated)
	assert.Equal(t, []bool{true, false}, obs.auths)
}
