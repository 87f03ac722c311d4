package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Priyank118/fdanalytics/internal/config"
	"github.com/Priyank118/fdanalytics/internal/handler"
	"github.com/Priyank118/fdanalytics/internal/logger"
	"github.com/Priyank118/fdanalytics/internal/repository"
	"github.com/Priyank118/fdanalytics/internal/repository/postgres"
	"github.com/Priyank118/fdanalytics/internal/service"
)

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pgRepo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		log.Fatalf("❌ Postgres connection failed: %v", err)
	}
	defer pgRepo.Close()

	pool := pgRepo.Pool()
	teamRepo := postgres.NewTeamRepository(pool)
	matchRepo := postgres.NewMatchRepository(pool)
	pinger := postgres.NewPinger(pool)
	txManager := postgres.NewTxManager(pool)

	teamSvc := service.NewTeamService(teamRepo, txManager, appLogger)
	matchSvc := service.NewMatchService(matchRepo, teamRepo, appLogger)
	dashSvc := service.NewDashboardService(matchRepo, teamRepo, appLogger)

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, pinger, teamSvc, matchSvc, dashSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info().Str("addr", addr).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutdown signal received")

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	appLogger.Info().Msg("service stopped")
}
