package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-service/internal/core/auth"
	"user-service/internal/domain"
	"user-service/internal/transport/http/ez"
	"user-service/pkg/utils"
)

const adminSubject = "admin"

// AdminHandler serves the back-office endpoints. Login checks the password
// against a bcrypt hash; an empty hash disables login.
type AdminHandler struct {
	svc          UserService
	jwter        *auth.JWTer
	passwordHash string
}

func NewAdminHandler(svc UserService, jwter *auth.JWTer, passwordHash string) *AdminHandler {
	return &AdminHandler{svc: svc, jwter: jwter, passwordHash: passwordHash}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type searchUsersQuery struct {
	Q      string `form:"q"`
	Active *bool  `form:"active"`
}

// MountAdminPublic registers routes that need no token.
func (h *AdminHandler) MountAdminPublic(g *gin.RouterGroup) {
	ez.RegisterAction(g, ez.Action[loginRequest, loginResponse]{
		Method:  http.MethodPost,
		Path:    "/login",
		Binder:  ez.BindJSON,
		Handler: h.login,
	})
}

// MountAdmin registers routes behind the admin token check.
func (h *AdminHandler) MountAdmin(g *gin.RouterGroup) {
	ez.RegisterAction(g, ez.Action[searchUsersQuery, []domain.User]{
		Method:  http.MethodGet,
		Path:    "/users",
		Binder:  ez.BindQuery,
		Handler: h.search,
	})
	ez.RegisterCommand(g, ez.Command[struct{}]{
		Method:  http.MethodPost,
		Path:    "/users/:id/ban",
		Binder:  ez.BindNone,
		Handler: h.ban,
	})
	ez.RegisterAction(g, ez.Action[struct{}, *domain.User]{
		Method:  http.MethodPost,
		Path:    "/users/:id/restore",
		Binder:  ez.BindNone,
		Handler: h.restore,
	})
}

func (h *AdminHandler) login(c *gin.Context, in *loginRequest) domain.ResultOf[loginResponse] {
	if !utils.CheckPassword(in.Password, h.passwordHash) {
		return domain.FailureOf[loginResponse](domain.ErrAuthInvalidCredentials)
	}
	tok, err := h.jwter.Issue(adminSubject, auth.RoleAdmin)
	if err != nil {
		_ = c.Error(err)
		return domain.FailureOf[loginResponse](domain.ErrAuthTokenIssue)
	}
	return domain.SuccessOf(loginResponse{Token: tok, ExpiresIn: int64(h.jwter.TTL.Seconds())})
}

// search filters by a case-insensitive substring of email or full name.
func (h *AdminHandler) search(c *gin.Context, in *searchUsersQuery) domain.ResultOf[[]domain.User] {
	var res domain.ResultOf[[]domain.User]
	if in.Active != nil {
		res = h.svc.ListByStatus(c.Request.Context(), *in.Active)
	} else {
		res = h.svc.GetAll(c.Request.Context())
	}
	q := strings.ToLower(strings.TrimSpace(in.Q))
	if res.IsFailure() || q == "" {
		return res
	}
	out := make([]domain.User, 0, len(res.Value()))
	for _, u := range res.Value() {
		if strings.Contains(strings.ToLower(u.Email), q) || strings.Contains(strings.ToLower(u.FullName), q) {
			out = append(out, u)
		}
	}
	return domain.SuccessOf(out)
}

func (h *AdminHandler) ban(c *gin.Context, _ *struct{}) domain.Result {
	id, e := ez.ParamID(c, "id")
	if e != nil {
		return domain.Failure(e)
	}
	return h.svc.Delete(c.Request.Context(), id)
}

func (h *AdminHandler) restore(c *gin.Context, _ *struct{}) domain.ResultOf[*domain.User] {
	id, e := ez.ParamID(c, "id")
	if e != nil {
		return domain.FailureOf[*domain.User](e)
	}
	got := h.svc.GetByID(c.Request.Context(), id)
	if got.IsFailure() {
		return got
	}
	u := *got.Value()
	u.IsActive = true
	return h.svc.Update(c.Request.Context(), &u)
}
