// Package app opens the dependencies shared by the api and admin binaries.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"user-service/internal/core/auth"
	"user-service/internal/core/cache"
	"user-service/internal/core/config"
	"user-service/internal/core/database"
	"user-service/internal/core/logger"
	"user-service/internal/feature/user"
	"user-service/internal/transport/http/router"
)

type App struct {
	Cfg   *config.Config
	Log   *zap.Logger
	DB    *gorm.DB
	Cache *cache.Cache // nil without redis.addr
	Users *user.Module
}

// NewLogger builds the process logger from cfg.Log.
func NewLogger(cfg *config.Config) (*zap.Logger, func()) {
	return logger.Build(logger.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		AddCaller:   true,
		Development: !cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Filename:   cfg.Log.File.Filename,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
}

// Open connects the database and, when configured, redis, then wires
// the user module. Migrations run when db.automigrate is set.
func Open(ctx context.Context, cfg *config.Config, l *zap.Logger) (*App, error) {
	gormLog, err := logger.ToStdLogger(l.Named("gorm"), zapcore.WarnLevel)
	if err != nil {
		return nil, err
	}
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Writer:             gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := user.Migrate(db); err != nil {
			return nil, fmt.Errorf("automigrate: %w", err)
		}
		l.Info("automigrate done")
	}

	a := &App{Cfg: cfg, Log: l, DB: db}
	deps := user.Deps{DB: db, Log: l}
	if cfg.Redis.Addr != "" {
		a.Cache = cache.New(cache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.App.Name + ":",
			MissTTL:  30 * time.Second,
		})
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := a.Cache.Ping(pctx); err != nil {
			// cache misses fall back to the database
			l.Warn("redis unreachable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		deps.Cache = a.Cache
		deps.TTL = time.Duration(cfg.Redis.TTLSec) * time.Second
	}
	a.Users = user.New(deps)
	return a, nil
}

// Ping checks the database for /health.
func (a *App) Ping(ctx context.Context) error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// JWTer builds the token issuer from cfg.JWT.
func (a *App) JWTer() *auth.JWTer {
	return &auth.JWTer{
		Secret: []byte(a.Cfg.JWT.Secret),
		Issuer: a.Cfg.JWT.Issuer,
		TTL:    time.Duration(a.Cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}
}

// Registry returns the module registry for the api or admin engine.
func (a *App) Registry(jwter *auth.JWTer) *router.Registry {
	var reg router.Registry
	reg.Register(a.Users.API)
	if jwter != nil {
		reg.Register(a.Users.Admin(jwter, a.Cfg.Admin.PasswordHash))
	}
	return &reg
}

func (a *App) Close() {
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
