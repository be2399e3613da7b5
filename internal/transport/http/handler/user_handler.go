package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"user-service/internal/domain"
	"user-service/internal/transport/http/ez"
)

// UserService is the part of service.UserService the handlers use.
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) domain.ResultOf[*domain.User]
	GetAll(ctx context.Context) domain.ResultOf[[]domain.User]
	ListByStatus(ctx context.Context, active bool) domain.ResultOf[[]domain.User]
	Create(ctx context.Context, u *domain.User) domain.ResultOf[*domain.User]
	Update(ctx context.Context, u *domain.User) domain.ResultOf[*domain.User]
	Delete(ctx context.Context, id uuid.UUID) domain.Result
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler { return &UserHandler{svc: svc} }

type listUsersQuery struct {
	Active *bool `form:"active"`
}

type createUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type updateUserRequest struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	IsActive *bool     `json:"isActive"` // omitted keeps the user active
}

func (r updateUserRequest) user() *domain.User {
	active := r.IsActive == nil || *r.IsActive
	return &domain.User{ID: r.ID, Email: r.Email, FullName: r.FullName, IsActive: active}
}

// MountAPI registers /users under the api group.
func (h *UserHandler) MountAPI(g *gin.RouterGroup) {
	users := g.Group("/users")

	ez.RegisterAction(users, ez.Action[listUsersQuery, []domain.User]{
		Method:  http.MethodGet,
		Path:    "",
		Binder:  ez.BindQuery,
		Handler: h.list,
	})
	ez.RegisterAction(users, ez.Action[struct{}, *domain.User]{
		Method:  http.MethodGet,
		Path:    "/:id",
		Binder:  ez.BindNone,
		Handler: h.get,
	})
	ez.RegisterAction(users, ez.Action[createUserRequest, *domain.User]{
		Method: http.MethodPost,
		Path:   "",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *createUserRequest) domain.ResultOf[*domain.User] {
			return h.svc.Create(c.Request.Context(), &domain.User{Email: in.Email, FullName: in.FullName})
		},
	})
	ez.RegisterAction(users, ez.Action[updateUserRequest, *domain.User]{
		Method: http.MethodPut,
		Path:   "",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *updateUserRequest) domain.ResultOf[*domain.User] {
			return h.svc.Update(c.Request.Context(), in.user())
		},
	})
	ez.RegisterCommand(users, ez.Command[struct{}]{
		Method:  http.MethodDelete,
		Path:    "/:id",
		Binder:  ez.BindNone,
		Handler: h.delete,
	})
}

func (h *UserHandler) list(c *gin.Context, in *listUsersQuery) domain.ResultOf[[]domain.User] {
	if in.Active != nil {
		return h.svc.ListByStatus(c.Request.Context(), *in.Active)
	}
	return h.svc.GetAll(c.Request.Context())
}

func (h *UserHandler) get(c *gin.Context, _ *struct{}) domain.ResultOf[*domain.User] {
	id, e := ez.ParamID(c, "id")
	if e != nil {
		return domain.FailureOf[*domain.User](e)
	}
	return h.svc.GetByID(c.Request.Context(), id)
}

func (h *UserHandler) delete(c *gin.Context, _ *struct{}) domain.Result {
	id, e := ez.ParamID(c, "id")
	if e != nil {
		return domain.Failure(e)
	}
	return h.svc.Delete(c.Request.Context(), id)
}
