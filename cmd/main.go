package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/portofolyo/auth-service/config"
	"github.com/portofolyo/auth-service/db"
	"github.com/portofolyo/auth-service/internal/auth/domain"
	"github.com/portofolyo/auth-service/internal/auth/handler"
	"github.com/portofolyo/auth-service/internal/auth/lockout"
	pgrepo "github.com/portofolyo/auth-service/internal/auth/repository/postgres"
	redisrepo "github.com/portofolyo/auth-service/internal/auth/repository/redis"
	"github.com/portofolyo/auth-service/internal/auth/service"
	"github.com/portofolyo/auth-service/pkg/constant"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(cfg.DBURL, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	identityRepo := pgrepo.NewPostgresRepository(pool)

	var ledger domain.RevocationLedger
	if cfg.RevocationBackend == constant.RevocationBackendRedis {
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		ledger = redisrepo.NewRedisLedger(client, time.Duration(cfg.RefreshExpiryMin)*time.Minute)
	} else {
		ledger = pgrepo.NewPostgresLedger(pool)
	}

	tokenService := service.NewTokenService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	policy := lockout.NewPolicy(cfg.MaxLoginAttempts, time.Duration(cfg.LockoutMinutes)*time.Minute)
	sessionService := service.NewSessionService(
		identityRepo, ledger, tokenService, policy, cfg.BcryptCost, logger)

	if purged, err := sessionService.PurgeExpiredRevocations(ctx); err != nil {
		logger.Warn("revocation purge failed", zap.Error(err))
	} else if purged > 0 {
		logger.Info("purged stale revocations", zap.Int64("count", purged))
	}

	authHandler := handler.NewAuthHandler(sessionService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
