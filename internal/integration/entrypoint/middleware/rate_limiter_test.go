package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newRateLimitedEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(rl.Middleware())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doRequest(engine *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterMiddleware(t *testing.T) {
	// The middleware short-circuits in the test environment, so clear the
	// markers for the duration of each subtest.
	t.Setenv("ENV", "")
	t.Setenv("E2E_MODE", "")

	t.Run("allows requests under the limit", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		engine := newRateLimitedEngine(NewRateLimiterWithConfig(client, 3, time.Minute))

		for i := 0; i < 3; i++ {
			if rec := doRequest(engine, "10.0.0.1"); rec.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
			}
		}
	})

	t.Run("blocks requests over the limit", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		engine := newRateLimitedEngine(NewRateLimiterWithConfig(client, 2, time.Minute))

		doRequest(engine, "10.0.0.1")
		doRequest(engine, "10.0.0.1")

		rec := doRequest(engine, "10.0.0.1")
		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rec.Code)
		}
	})

	t.Run("tracks each client address separately", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		engine := newRateLimitedEngine(NewRateLimiterWithConfig(client, 1, time.Minute))

		if rec := doRequest(engine, "10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for first client, got %d", rec.Code)
		}
		if rec := doRequest(engine, "10.0.0.2"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for second client, got %d", rec.Code)
		}
		if rec := doRequest(engine, "10.0.0.1"); rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 for first client, got %d", rec.Code)
		}
	})

	t.Run("fails open when the store is unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		engine := newRateLimitedEngine(NewRateLimiterWithConfig(client, 1, time.Minute))
		mr.Close()

		if rec := doRequest(engine, "10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("passes through without a client", func(t *testing.T) {
		engine := newRateLimitedEngine(NewRateLimiterWithConfig(nil, 1, time.Minute))

		for i := 0; i < 3; i++ {
			if rec := doRequest(engine, "10.0.0.1"); rec.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
			}
		}
	})
}
