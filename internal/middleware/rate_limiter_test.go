package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateLimitedHandler(l *IPRateLimiter) echo.HandlerFunc {
	return l.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func doRequest(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewIPRateLimiter(1, 5))

	for i := 0; i < 5; i++ {
		rec := doRequest(e, handler, "192.168.1.100:12345", nil)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i)
	}

	rec := doRequest(e, handler, "192.168.1.100:12345", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_005")
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewIPRateLimiter(1, 1))

	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.1:1000", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, handler, "10.0.0.1:1000", nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.2:1000", nil).Code)
}

func TestRateLimiter_UsesFirstForwardedAddress(t *testing.T) {
	e := echo.New()
	limiter := NewIPRateLimiter(1, 1)
	handler := rateLimitedHandler(limiter)

	assert.Equal(t, http.StatusOK, doRequest(e, handler, "127.0.0.1:1", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, handler, "127.0.0.1:2", map[string]string{"X-Forwarded-For": "203.0.113.9"}).Code)
	assert.Equal(t, http.StatusOK, doRequest(e, handler, "127.0.0.1:3", map[string]string{"X-Real-IP": "198.51.100.4"}).Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(5, 5)
	limiter.now = func() time.Time { return clock }

	limiter.limiter("10.0.0.1")
	clock = clock.Add(2 * time.Minute)
	limiter.limiter("10.0.0.2")
	assert.Equal(t, 2, limiter.visitorCount())

	clock = clock.Add(2 * time.Minute)
	limiter.cleanup()
	assert.Equal(t, 1, limiter.visitorCount())
}

func TestRateLimiter_RunCleanupStops(t *testing.T) {
	limiter := NewIPRateLimiter(5, 5)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		limiter.RunCleanup(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}

func TestRateLimiter_Concurrent(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewIPRateLimiter(1, 10))

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if doRequest(e, handler, "172.16.0.1:9", nil).Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, allowed, 10)
	assert.LessOrEqual(t, allowed, 11)
}
