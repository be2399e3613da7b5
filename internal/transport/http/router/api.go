package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"user-service/internal/core/config"
	"user-service/internal/core/server"
	mdw "user-service/internal/transport/http/middleware"
	resp "user-service/internal/transport/http/response"
)

// Pinger reports whether a dependency is reachable.
type Pinger func(ctx context.Context) error

func newEngine(l *zap.Logger, lim config.Limits) *gin.Engine {
	r := server.NewRouter(lim.AllowedOrigins)
	r.Use(mdw.RequestID(), mdw.Recovery(l), mdw.AccessLog(l), mdw.Metrics())
	// a zero limit disables its middleware
	if lim.RPS > 0 {
		r.Use(mdw.RateLimit(rate.Limit(lim.RPS), lim.Burst))
	}
	if lim.PerIPRPS > 0 {
		r.Use(mdw.RateLimitPerIP(rate.Limit(lim.PerIPRPS), lim.PerIPBurst))
	}
	if lim.MaxConcurrent > 0 {
		r.Use(mdw.ConcurrencyLimit(lim.MaxConcurrent))
	}
	if lim.MaxBodyBytes > 0 {
		r.Use(mdw.MaxBodyBytes(lim.MaxBodyBytes))
	}
	if lim.TimeoutSec > 0 {
		r.Use(mdw.Timeout(time.Duration(lim.TimeoutSec) * time.Second))
	}
	r.NoRoute(func(c *gin.Context) {
		resp.Abort(c, http.StatusNotFound, resp.CodeRouteNotFound, "No route for "+c.Request.Method+" "+c.Request.URL.Path+".")
	})
	r.NoMethod(func(c *gin.Context) {
		resp.Abort(c, http.StatusMethodNotAllowed, resp.CodeMethodNotAllowed, "Method "+c.Request.Method+" is not allowed.")
	})
	return r
}

func health(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				_ = c.Error(err)
				resp.Abort(c, http.StatusServiceUnavailable, resp.CodeUnhealthy, "Database is unreachable.")
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// NewAPIEngine serves the public API under /api/v1.
func NewAPIEngine(l *zap.Logger, lim config.Limits, reg *Registry, ping Pinger) *gin.Engine {
	r := newEngine(l, lim)
	r.GET("/health", health(ping))
	reg.MountAPI(r.Group("/api/v1"))
	return r
}
