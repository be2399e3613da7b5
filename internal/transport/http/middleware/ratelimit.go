package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	resp "user-service/internal/transport/http/response"
)

func abortThrottled(c *gin.Context) {
	resp.Abort(c, http.StatusTooManyRequests, resp.CodeTooManyRequests, "Too many requests.")
}

// RateLimit is a global token bucket.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if !lim.Allow() {
			abortThrottled(c)
			return
		}
		c.Next()
	}
}

// RateLimitPerIP keeps one token bucket per client ip.
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)
	limiter := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		lim, ok := buckets[ip]
		if !ok {
			lim = rate.NewLimiter(rps, burst)
			buckets[ip] = lim
		}
		return lim
	}
	return func(c *gin.Context) {
		if !limiter(c.ClientIP()).Allow() {
			abortThrottled(c)
			return
		}
		c.Next()
	}
}
