package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestAllow_BurstThenDeny(t *testing.T) {
	lim := New(0.001, 3)
	for i := 0; i < 3; i++ {
		require.True(t, lim.Allow("1.2.3.4"))
	}
	require.False(t, lim.Allow("1.2.3.4"))
	require.True(t, lim.Allow("5.6.7.8"), "keys are independent")

	lim.Reset("1.2.3.4")
	require.True(t, lim.Allow("1.2.3.4"))
}

func TestCleanup(t *testing.T) {
	lim := New(1, 1)
	lim.Allow("a")
	lim.Allow("b")
	require.Equal(t, 2, lim.Len())

	lim.Cleanup(time.Hour)
	require.Equal(t, 2, lim.Len())

	lim.Cleanup(-time.Second)
	require.Equal(t, 0, lim.Len())
}

func TestMiddleware_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0.001, 1)
	r := gin.New()
	r.Use(Middleware(lim))
	r.POST("/token", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/token", nil))
	require.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/token", nil))
	require.Equal(t, 429, w.Code)
	require.Equal(t, "1", w.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "RATE_LIMITED", body["code"])
}
