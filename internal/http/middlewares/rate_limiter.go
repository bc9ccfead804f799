package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimiter enforces a fixed-window request budget per client IP.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type counter struct {
		hits    int
		started time.Time
	}

	var (
		mu       sync.Mutex
		counters = make(map[string]*counter)
	)

	prune := func(now time.Time) {
		for key, c := range counters {
			if now.Sub(c.started) > window {
				delete(counters, key)
			}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			if len(counters) > 1024 {
				prune(now)
			}

			w, ok := counters[key]
			if !ok || now.Sub(w.started) > window {
				w = &counter{started: now}
				counters[key] = w
			}

			if w.hits >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			w.hits++
			mu.Unlock()

			return next(c)
		}
	}
}
