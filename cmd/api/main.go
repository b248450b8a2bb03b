package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/rs/cors"

	"github.com/agentmarket/backend/internal/auth"
	"github.com/agentmarket/backend/internal/catalog"
	"github.com/agentmarket/backend/internal/config"
	"github.com/agentmarket/backend/internal/execution"
	"github.com/agentmarket/backend/internal/metrics"
	"github.com/agentmarket/backend/internal/middleware"
	"github.com/agentmarket/backend/internal/repository"
	"github.com/agentmarket/backend/internal/reviews"
	"github.com/agentmarket/backend/internal/router"
	"github.com/agentmarket/backend/internal/stats"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Unable to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("Cannot reach PostgreSQL (connection refused or invalid). Ensure Postgres is running, e.g. docker-compose up -d", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to PostgreSQL database")

	// River migrations (job queue tables)
	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		slog.Error("Failed to create River migrator", "error", err)
		os.Exit(1)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		slog.Error("River migrate up failed. If the error is 'connection refused', start PostgreSQL first", "error", err)
		os.Exit(1)
	}
	slog.Info("River migrations applied")

	mtr := metrics.New("agentmarket")

	// Repositories
	agentRepo := repository.NewAgentRepo(pool)
	userRepo := repository.NewUserRepo(pool)
	reviewRepo := repository.NewReviewRepo(pool)
	statsRepo := repository.NewStatsRepo(pool)

	// Rating-stats recompute worker
	workers := river.NewWorkers()
	river.AddWorker(workers, stats.NewRefreshRatingStatsWorker(statsRepo, mtr, logger))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		Workers: workers,
	})
	if err != nil {
		slog.Error("Failed to create River client", "error", err)
		os.Exit(1)
	}

	enqueueRefresh := func(ctx context.Context, agentID string) error {
		_, err := riverClient.Insert(ctx, stats.RefreshRatingStatsArgs{AgentID: agentID}, nil)
		return err
	}

	// Services & handlers
	authSvc := auth.NewService(userRepo, cfg.JWTSecret)
	authHandler := auth.NewHandler(authSvc, userRepo, reviewRepo, logger)

	catalogSvc := catalog.NewService(agentRepo)
	catalogHandler := catalog.NewHandler(catalogSvc, logger)

	reviewSvc := reviews.NewService(userRepo, reviewRepo, enqueueRefresh, logger)
	reviewHandler := reviews.NewHandler(reviewSvc, authSvc, mtr, logger)

	execSvc := execution.NewService(agentRepo)
	execHandler := execution.NewHandler(execSvc, logger)

	apiRouter := router.New(catalogHandler, reviewHandler, execHandler, authHandler)

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/healthz", apiRouter)
	mux.Handle("/metrics", mtr.Handler())

	handler := middleware.RequestLog(logger, mtr)(mux)
	handler = cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(handler)

	// Start River client (processes rating-stats jobs)
	riverCtx, stopRiver := context.WithCancel(ctx)
	defer stopRiver()
	go func() {
		if err := riverClient.Start(riverCtx); err != nil && riverCtx.Err() == nil {
			slog.Error("River client stopped", "error", err)
		}
	}()

	serverAddr := "0.0.0.0:" + cfg.Port
	slog.Info("Starting HTTP server", "addr", serverAddr)
	if err := http.ListenAndServe(serverAddr, handler); err != nil {
		slog.Error("HTTP server failed", "error", err)
		os.Exit(1)
	}
}
