package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/transfer-market/internal/auth"
	"github.com/bagdasarian/transfer-market/internal/config"
	"github.com/bagdasarian/transfer-market/internal/db"
	"github.com/bagdasarian/transfer-market/internal/handler"
	"github.com/bagdasarian/transfer-market/internal/handler/server"
	"github.com/bagdasarian/transfer-market/internal/logger"
	"github.com/bagdasarian/transfer-market/internal/metrics"
	"github.com/bagdasarian/transfer-market/internal/repository/postgres"
	"github.com/bagdasarian/transfer-market/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.New(cfg.Log.Env, cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database := db.MustLoad(context.Background(), cfg.Database)
	log.Info("successfully connected to database")
	defer database.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(database, "transfer_market"),
	)
	appMetrics := metrics.New(registry)

	store := postgres.NewStore(database)
	statsRepo := postgres.NewStatsRepository(database)

	tokens := auth.NewTokenManager(auth.TokenConfig{
		Issuer:        cfg.Auth.Issuer,
		AccessSecret:  cfg.Auth.AccessSecret,
		AccessTTL:     cfg.Auth.AccessLifetime,
		RefreshSecret: cfg.Auth.RefreshSecret,
		RefreshTTL:    cfg.Auth.RefreshLifetime,
	})
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	teamService := service.NewTeamService(store)
	userService := service.NewUserService(store, tokens, hasher)
	transferService := service.NewTransferService(store, appMetrics)
	statsService := service.NewStatsService(statsRepo)

	h := handler.NewHandler(teamService, userService, transferService, statsService, log)
	srv := server.NewServer(h, cfg.HTTP.Addr, log, appMetrics, registry)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
}
