package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/api"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/service"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/token"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/infrastructure/config"
	mongodb "github.com/vipulmaurya2223/expense-splitter-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vipulmaurya2223/expense-splitter-api/internal/infrastructure/db/redis"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/infrastructure/queue"
	"github.com/vipulmaurya2223/expense-splitter-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// logger is not configured yet; write straight to stderr and abort
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	issuer := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL())
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Redis.LoginAttempts, cfg.Redis.LoginAttemptsTTL)

	activityRepo := mongodb.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Mongo:    db,
		Redis:    rdb,
		Issuer:   issuer,
		Limiter:  limiter,
		Recorder: dispatcher,
		Activity: activityService,
		Log:      log,
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}
