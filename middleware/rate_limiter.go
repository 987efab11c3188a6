package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

type windowEntry struct {
	count   int
	resetAt time.Time
}

// rateLimitState holds the in-memory fixed windows for one limiter
// instance. Expired entries for a key are replaced on that key's next hit;
// keys that never come back are pruned by a sweep that runs at most once
// per window length.
type rateLimitState struct {
	mu        sync.Mutex
	window    time.Duration
	windows   map[string]*windowEntry
	lastSweep time.Time
}

func newRateLimitState(window time.Duration) *rateLimitState {
	return &rateLimitState{
		window:    window,
		windows:   make(map[string]*windowEntry),
		lastSweep: time.Now(),
	}
}

// hit records one request against key and returns the running count and
// the window's reset time.
func (st *rateLimitState) hit(key string, now time.Time) (int, time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if now.Sub(st.lastSweep) >= st.window {
		for k, e := range st.windows {
			if now.After(e.resetAt) {
				delete(st.windows, k)
			}
		}
		st.lastSweep = now
	}

	entry, ok := st.windows[key]
	if !ok || now.After(entry.resetAt) {
		entry = &windowEntry{resetAt: now.Add(st.window)}
		st.windows[key] = entry
	}
	entry.count++
	return entry.count, entry.resetAt
}

// RateLimiter is a fixed-window limiter keyed per-IP, per-method,
// per-endpoint. Windows live in process memory.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	state := newRateLimitState(window)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		endpoint := c.FullPath()
		method := c.Request.Method

		key := "rl:" + ip + ":" + method + ":" + endpoint
		count, resetAt := state.hit(key, time.Now())

		// Remaining requests (clamped at 0)
		remaining := maxRequests - count
		if remaining < 0 {
			remaining = 0
		}

		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Store in context for controllers
		c.Set("rateLimiter", rate)

		// If limit exceeded → block request
		if count > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
