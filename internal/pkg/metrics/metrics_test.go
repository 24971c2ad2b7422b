package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/products/:id", func(c *gin.Context) { c.Status(404) })
	r.GET("/metrics", m.Handler())

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/products/"+id, nil))
	}

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/products/:id", "404")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "skincare_http_requests_total")
}

func TestDomainCounters(t *testing.T) {
	m := New()
	m.RoutineStep("add", "STEP_ADDED")
	m.RoutineStep("remove", "ROUTINE_NOT_FOUND")
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)

	require.Equal(t, 1.0, testutil.ToFloat64(m.routineOps.WithLabelValues("add", "STEP_ADDED")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("miss")))
}
