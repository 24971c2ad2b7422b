package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"github.com/xyz-asif/skincare/internal/config"
	"github.com/xyz-asif/skincare/internal/pkg/cache"
	"github.com/xyz-asif/skincare/internal/pkg/metrics"
	"github.com/xyz-asif/skincare/internal/pkg/ratelimit"
	"github.com/xyz-asif/skincare/internal/pkg/token"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

func testConfig() *config.Config {
	return &config.Config{
		FrontendURL:        "http://localhost:3000",
		StatsCacheTTL:      time.Minute,
		RequestTimeout:     5 * time.Second,
		AuthRateLimitRPS:   1,
		AuthRateLimitBurst: 1,
	}
}

func newTestRouter(mt *mtest.T, health Pinger) *gin.Engine {
	mt.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewManager("test-secret", "HS256", time.Hour)
	require.NoError(mt, err)

	cfg := testConfig()
	router, err := NewRouter(Dependencies{
		Config:      cfg,
		DB:          mt.DB,
		Health:      health,
		Tokens:      tokens,
		Cache:       cache.Noop{},
		Metrics:     metrics.New(),
		Logger:      zap.NewNop(),
		AuthLimiter: ratelimit.New(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst),
	})
	require.NoError(mt, err)
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("health up", func(mt *mtest.T) {
		router := newTestRouter(mt, fakePinger{})
		w := serve(router, http.MethodGet, "/health", "")
		require.Equal(mt, http.StatusOK, w.Code)
		require.Contains(mt, w.Body.String(), `"database":"up"`)
		require.NotEmpty(mt, w.Header().Get("X-Request-ID"))
	})

	mt.Run("health down", func(mt *mtest.T) {
		router := newTestRouter(mt, fakePinger{err: errors.New("no primary")})
		w := serve(router, http.MethodGet, "/health", "")
		require.Equal(mt, http.StatusServiceUnavailable, w.Code)
		require.Contains(mt, w.Body.String(), `"database":"down"`)
	})

	mt.Run("protected routes need a token", func(mt *mtest.T) {
		router := newTestRouter(mt, fakePinger{})
		for _, tc := range []struct{ method, path string }{
			{http.MethodPost, "/products"},
			{http.MethodPut, "/products/665f1c2e8b3a4d0012ab34cd"},
			{http.MethodDelete, "/products/665f1c2e8b3a4d0012ab34cd"},
			{http.MethodPost, "/routines"},
			{http.MethodGet, "/routines/u@example.com"},
			{http.MethodPut, "/routines/665f1c2e8b3a4d0012ab34cd/add_step"},
			{http.MethodPut, "/routines/665f1c2e8b3a4d0012ab34cd/remove_step"},
		} {
			w := serve(router, tc.method, tc.path, `{}`)
			require.Equal(mt, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		}
	})

	mt.Run("auth endpoints are rate limited", func(mt *mtest.T) {
		router := newTestRouter(mt, fakePinger{})

		w := serve(router, http.MethodPost, "/token", `not json`)
		require.Equal(mt, http.StatusBadRequest, w.Code)

		w = serve(router, http.MethodPost, "/token", `not json`)
		require.Equal(mt, http.StatusTooManyRequests, w.Code)
		require.Contains(mt, w.Body.String(), "RATE_LIMITED")
	})

	mt.Run("metrics exposed", func(mt *mtest.T) {
		router := newTestRouter(mt, fakePinger{})
		serve(router, http.MethodGet, "/health", "")

		w := serve(router, http.MethodGet, "/metrics", "")
		require.Equal(mt, http.StatusOK, w.Code)
		require.Contains(mt, w.Body.String(), `skincare_http_requests_total{method="GET",path="/health",status="200"} 1`)
	})

	mt.Run("unknown route", func(mt *mtest.T) {
		router := newTestRouter(mt, fakePinger{})
		w := serve(router, http.MethodGet, "/nope", "")
		require.Equal(mt, http.StatusNotFound, w.Code)
		require.Contains(mt, w.Body.String(), "ROUTE_NOT_FOUND")
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB))
	})

	mt.Run("ensure indexes failure stops at first store", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized to create index",
		}))
		require.Error(mt, EnsureIndexes(context.Background(), mt.DB))
	})
}
