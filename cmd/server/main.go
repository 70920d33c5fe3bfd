package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loansewa/loansewa-web/internal/api"
	"github.com/loansewa/loansewa-web/internal/infrastructure/config"
	"github.com/loansewa/loansewa-web/internal/infrastructure/db/redis"
	"github.com/loansewa/loansewa-web/internal/infrastructure/loanapi"
	"github.com/loansewa/loansewa-web/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") == "development",
	})

	cfg := config.Load(log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
	}

	loanAPI := loanapi.NewClient(cfg.LoanAPI.BaseURL, cfg.LoanAPI.Timeout, logger.With("loanapi"))

	e := api.NewRouter(cfg, loanAPI, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("loansewa web started")

	// Block until SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("closing redis connection failed")
	}
	log.Info().Msg("loansewa web stopped")
}
