package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func hit(e *echo.Echo, handler echo.HandlerFunc, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rpc/process_transfer", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec.Code
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(1, 3).Middleware()(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(e, handler, "10.0.0.1"), "request %d", i)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiterDifferentIPs(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(1, 1).Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, hit(e, handler, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(e, handler, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(e, handler, "10.0.0.2"))
}

func TestVisitorCleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.allow("10.0.0.1")
	rl.allow("10.0.0.2")
	assert.Equal(t, 2, rl.visitorCount())

	now = now.Add(visitorTTL / 2)
	rl.allow("10.0.0.2")

	now = now.Add(visitorTTL/2 + time.Second)
	rl.evictIdle()

	assert.Equal(t, 1, rl.visitorCount())
}

func TestRateLimiterConcurrency(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(1, 10).Middleware()(okHandler)

	var allowed int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if hit(e, handler, "10.0.0.9") == http.StatusOK {
				atomic.AddInt32(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, int(allowed), 11)
	assert.GreaterOrEqual(t, int(allowed), 10)
}
