package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"user-service/internal/app"
	"user-service/internal/core/auth"
	"user-service/internal/core/config"
	"user-service/internal/core/logger"
	"user-service/internal/core/server"
	"user-service/internal/transport/http/router"
	"user-service/pkg/utils"
)

const usage = `usage:
  admin                      serve the admin api
  admin hash-password <pw>   print a bcrypt hash for admin.passwordhash
  admin token                print an admin token signed with jwt.secret`

func main() {
	_ = godotenv.Load()
	if len(os.Args) > 1 {
		os.Exit(runCommand(os.Args[1:]))
	}
	serve()
}

func runCommand(args []string) int {
	switch args[0] {
	case "hash-password":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, usage)
			return 2
		}
		h, err := utils.HashPassword(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(h)
		return 0
	case "token":
		cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		tok, err := (&app.App{Cfg: cfg}).JWTer().Issue("admin", auth.RoleAdmin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(tok)
		return 0
	default:
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
}

func serve() {
	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))
	log, cleanup := app.NewLogger(cfg)
	defer cleanup()
	log = log.Named("admin")
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log.Named("gin"), zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log.Named("gin"), zapcore.ErrorLevel)

	if cfg.JWT.Secret == "change-me" {
		log.Warn("jwt.secret is the default value")
	}
	if cfg.Admin.PasswordHash == "" {
		log.Warn("admin.passwordhash is empty; login is disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}
	defer a.Close()

	jwter := a.JWTer()
	r := router.NewAdminEngine(log, cfg.Limits, a.Registry(jwter), jwter, a.Ping)

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second)
	log.Info("admin api starting", zap.String("addr", addr), zap.String("env", cfg.App.Env))
	if err := server.Run(ctx, srv, log, 10*time.Second); err != nil {
		log.Error("admin api stopped with error", zap.Error(err))
		return
	}
	log.Info("admin api stopped gracefully")
}
