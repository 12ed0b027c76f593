package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"instagram_backend/internal/app/di"
	"instagram_backend/internal/app/router"
	userhandler "instagram_backend/internal/feature/user/transport/handler"
	"instagram_backend/internal/feature/user/usecase"
	"instagram_backend/internal/platform/config"
	"instagram_backend/internal/platform/db"
	"instagram_backend/internal/platform/logger"
	platformredis "instagram_backend/internal/platform/redis"
	"instagram_backend/internal/platform/security"
)

const redisConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(os.Stdout, cfg.Server.LogLevel)

	// db
	gdb, err := db.Open(db.Config{
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Name:         cfg.Database.Name,
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		InstanceName: cfg.Database.InstanceName,
		SSLMode:      cfg.Database.SSLMode,
	}, cfg.Database.ConnectTimeout, cfg.Database.RunMigrations)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		slog.Error("failed to get database handle", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
		tmp, err := platformredis.NewRedisClient(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		cancel()
		if err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	userRepo := di.NewUserRepository(gdb, rdb, cfg.Cache.TTL, cfg.Cache.Namespace)

	// Usecase
	userUC := usecase.NewUserUsecase(userRepo, security.NewBcryptEncoder(cfg.Security.BcryptCost))

	// Handler
	userH := userhandler.NewUserHandler(userUC)

	r := router.NewRouter(userH, sqlDB)

	slog.Info("starting server", "addr", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
