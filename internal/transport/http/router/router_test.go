package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-service/internal/core/auth"
	"user-service/internal/core/config"
	resp "user-service/internal/transport/http/response"
)

func init() { gin.SetMode(gin.TestMode) }

var testLimits = config.Limits{
	RPS: 1000, Burst: 1000, PerIPRPS: 1000, PerIPBurst: 1000,
	MaxConcurrent: 10, MaxBodyBytes: 1 << 10, TimeoutSec: 5,
	AllowedOrigins: []string{"*"},
}

type pingModule struct {
	name     string
	priority int
	order    *[]string
}

func (m pingModule) Priority() int { return m.priority }

func (m pingModule) MountAPI(g *gin.RouterGroup) {
	*m.order = append(*m.order, m.name)
	g.GET("/"+m.name, func(c *gin.Context) { c.String(http.StatusOK, m.name) })
}

func (m pingModule) MountAdmin(g *gin.RouterGroup) {
	g.GET("/"+m.name, func(c *gin.Context) { c.String(http.StatusOK, m.name) })
}

type loginModule struct{}

func (loginModule) MountAdminPublic(g *gin.RouterGroup) {
	g.POST("/login", func(c *gin.Context) { c.String(http.StatusOK, "token") })
}

func do(r http.Handler, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", "Bearer "+auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func code(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var p resp.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p.Code
}

func TestRegistry_PriorityOrder(t *testing.T) {
	var order []string
	var reg Registry
	reg.Register(
		pingModule{name: "late", priority: 200, order: &order},
		pingModule{name: "early", priority: 10, order: &order},
		loginModule{},
	)
	NewAPIEngine(zap.NewNop(), testLimits, &reg, nil)

	assert.Equal(t, []string{"early", "late"}, order)
}

func TestAPIEngine_Routes(t *testing.T) {
	var order []string
	var reg Registry
	reg.Register(pingModule{name: "users", order: &order})
	r := NewAPIEngine(zap.NewNop(), testLimits, &reg, nil)

	w := do(r, http.MethodGet, "/api/v1/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(resp.KeyRequestID))

	w = do(r, http.MethodGet, "/api/v1/nothing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, resp.CodeRouteNotFound, code(t, w))

	w = do(r, http.MethodPatch, "/api/v1/users", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, resp.CodeMethodNotAllowed, code(t, w))
}

func TestAPIEngine_Health(t *testing.T) {
	var reg Registry
	healthy := NewAPIEngine(zap.NewNop(), testLimits, &reg, func(context.Context) error { return nil })
	assert.Equal(t, http.StatusOK, do(healthy, http.MethodGet, "/health", "").Code)

	down := NewAPIEngine(zap.NewNop(), testLimits, &reg, func(context.Context) error { return errors.New("refused") })
	w := do(down, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, resp.CodeUnhealthy, code(t, w))
}

func TestAPIEngine_ZeroLimitsDisabled(t *testing.T) {
	var order []string
	var reg Registry
	reg.Register(pingModule{name: "users", order: &order})
	r := NewAPIEngine(zap.NewNop(), config.Limits{}, &reg, nil)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/v1/users", "").Code)
}

func TestAdminEngine_Auth(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("k"), Issuer: "users", TTL: time.Hour}
	var order []string
	var reg Registry
	reg.Register(pingModule{name: "users", order: &order}, loginModule{})
	r := NewAdminEngine(zap.NewNop(), testLimits, &reg, j, nil)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/admin/v1/login", "").Code)

	w := do(r, http.MethodGet, "/admin/v1/users", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Auth.MissingToken", code(t, w))

	tok, err := j.Issue("admin", auth.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/admin/v1/users", tok).Code)
}

func TestAdminEngine_Metrics(t *testing.T) {
	var reg Registry
	r := NewAdminEngine(zap.NewNop(), testLimits, &reg, &auth.JWTer{Secret: []byte("k")}, nil)
	do(r, http.MethodGet, "/health", "")

	w := do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}
