package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"user-service/internal/core/auth"
	"user-service/internal/core/config"
	mdw "user-service/internal/transport/http/middleware"
)

// NewAdminEngine serves /admin/v1. Login is public; every other admin
// route requires an admin token.
func NewAdminEngine(l *zap.Logger, lim config.Limits, reg *Registry, jwter *auth.JWTer, ping Pinger) *gin.Engine {
	r := newEngine(l, lim)
	r.GET("/health", health(ping))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/admin/v1")
	reg.MountAdminPublic(public)

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, auth.RoleAdmin))
	reg.MountAdmin(admin)
	return r
}
