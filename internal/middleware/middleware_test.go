package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func get(r http.Handler, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_PerIP(t *testing.T) {
	limiter := NewRateLimiter(0, 2, time.Minute)
	r := newRouter(limiter.Middleware())

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1111", nil).Code)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1111", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1:1111", nil).Code)

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2:2222", nil).Code, "other clients have their own bucket")
}

func TestRateLimiter_GetReturnsSameLimiter(t *testing.T) {
	limiter := NewRateLimiter(5, 10, time.Minute)
	a := limiter.Get("192.0.2.1")
	require.NotNil(t, a)
	assert.Same(t, a, limiter.Get("192.0.2.1"))
	assert.NotSame(t, a, limiter.Get("192.0.2.2"))
	assert.Equal(t, 10, a.Burst())
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(5, 10, 10*time.Minute)
	limiter.now = func() time.Time { return now }

	idle := limiter.Get("192.0.2.1")
	now = now.Add(8 * time.Minute)
	active := limiter.Get("192.0.2.2")
	now = now.Add(5 * time.Minute)

	assert.Equal(t, 1, limiter.Evict())
	assert.Len(t, limiter.visitors, 1)
	assert.Same(t, active, limiter.Get("192.0.2.2"))
	assert.NotSame(t, idle, limiter.Get("192.0.2.1"), "an evicted client starts with a fresh bucket")
	assert.Equal(t, 0, limiter.Evict())
}

func TestRateLimiter_NoIdleTTLKeepsClients(t *testing.T) {
	limiter := NewRateLimiter(5, 10, 0)
	limiter.Get("192.0.2.1")
	limiter.now = func() time.Time { return time.Now().Add(24 * time.Hour) }

	assert.Equal(t, 0, limiter.Evict())
	assert.Len(t, limiter.visitors, 1)
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	limiter := NewRateLimiter(5, 10, time.Nanosecond)
	limiter.Get("192.0.2.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		return len(limiter.visitors) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID())

	rec := get(r, "10.0.0.1:1111", nil)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = get(r, "10.0.0.1:1111", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	r := newRouter(CORS())

	rec := get(r, "10.0.0.1:1111", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
