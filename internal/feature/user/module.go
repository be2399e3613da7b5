// Package user wires the user feature: repository, optional cache,
// service and handlers.
package user

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-service/internal/core/auth"
	"user-service/internal/domain"
	"user-service/internal/repo"
	"user-service/internal/service"
	"user-service/internal/transport/http/handler"
)

func Migrate(db *gorm.DB) error { return db.AutoMigrate(&domain.User{}) }

type Deps struct {
	DB    *gorm.DB
	Cache repo.Cache // nil disables the read-through cache
	TTL   time.Duration
	Log   *zap.Logger
}

// Module exposes the user service and its routes.
type Module struct {
	Service *service.UserService
	API     *handler.UserHandler
}

func New(d Deps) *Module {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	var users domain.UserRepository = repo.NewUserRepo(d.DB)
	if d.Cache != nil {
		users = repo.NewCachedUserRepo(users, d.Cache, d.TTL, d.Log)
	}
	svc := service.NewUserService(users, d.Log.Named("user"))
	return &Module{Service: svc, API: handler.NewUserHandler(svc)}
}

// Admin returns the back-office handler for this module.
func (m *Module) Admin(jwter *auth.JWTer, passwordHash string) *handler.AdminHandler {
	return handler.NewAdminHandler(m.Service, jwter, passwordHash)
}
