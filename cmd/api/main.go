package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-user-service/internal/core/auth"
	"go-user-service/internal/core/cache"
	"go-user-service/internal/core/config"
	"go-user-service/internal/core/database"
	"go-user-service/internal/core/logger"
	"go-user-service/internal/core/server"
	"go-user-service/internal/domain"
	"go-user-service/internal/repo"
	"go-user-service/internal/service"
	"go-user-service/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter, err := auth.New(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.Algorithm,
		time.Duration(cfg.JWT.AccessTokenTTLMin)*time.Minute,
	)
	if err != nil {
		log.Fatal("jwt config", zap.Error(err))
	}

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}
	userTTL := time.Duration(cfg.Redis.UserTTLSec) * time.Second

	store := repo.NewUserRepo(db)
	svc := service.NewUserService(store, c, userTTL, log)

	api := server.BuildServer(
		server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port),
		router.NewAPIEngine(log, svc, store, jwter),
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)
	ops := server.BuildServer(
		server.Addr(cfg.App.Ops.Host, cfg.App.Ops.Port),
		router.NewOpsEngine(log),
		5*time.Second, 10*time.Second, 30*time.Second,
	)

	go func() {
		log.Info("user api starting", zap.String("addr", api.Addr))
		if err := api.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("user api start failed", zap.Error(err))
		}
	}()
	go func() {
		log.Info("ops listener starting", zap.String("addr", ops.Addr))
		if err := ops.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("ops listener start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = api.Shutdown(ctx)
	_ = ops.Shutdown(ctx)
	log.Info("stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
