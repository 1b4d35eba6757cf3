package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucasv/prepdeck/internal/api"
	"github.com/lucasv/prepdeck/internal/config"
	"github.com/lucasv/prepdeck/internal/gateway"
	"github.com/lucasv/prepdeck/internal/interview"
	"github.com/lucasv/prepdeck/internal/jobs"
	"github.com/lucasv/prepdeck/internal/logger"
	"github.com/lucasv/prepdeck/internal/moderation"
	"github.com/lucasv/prepdeck/internal/quiz"
	"github.com/lucasv/prepdeck/internal/repository/sqlite"
	"github.com/lucasv/prepdeck/internal/services"
	"github.com/lucasv/prepdeck/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("PrepDeck Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("backend_url=%s", cfg.BackendURL)
	log.Debug("backend_timeout=%s", cfg.BackendTimeout)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("tick_interval=%s", cfg.TickInterval)
	log.Debug("batch_analyze_delay=%s", cfg.BatchAnalyzeDelay)
	log.Debug("job_worker_count=%d", cfg.JobWorkerCount)
	log.Debug("job_queue_size=%d", cfg.JobQueueSize)

	// Open local history cache
	database, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Backend gateway
	gw, err := gateway.New(cfg.BackendURL, cfg.BackendTimeout)
	if err != nil {
		log.Error("failed to create backend gateway: %v", err)
		os.Exit(1)
	}

	// Worker pool and services
	pool := worker.NewPool(cfg.JobWorkerCount, cfg.JobQueueSize)
	historyRepo := sqlite.NewHistoryRepository(database)
	historyService := services.NewHistoryService(gw, gw, historyRepo, cfg.HistoryPageSize)
	moderationService := moderation.NewService(gw, cfg.BatchAnalyzeDelay)
	jobQueue := jobs.NewWorkerQueue(pool, moderationService, historyService)

	// Workflow controllers
	quizController := quiz.NewController(gw, jobQueue, cfg.TickInterval)
	interviewController := interview.NewController(gw, jobQueue)

	srv := &api.Server{
		Quiz:       quizController,
		Interview:  interviewController,
		Moderation: moderationService,
		History:    historyService,
		Jobs:       jobQueue,
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	quizController.StartTimer(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping quiz timer")
	quizController.StopTimer()

	log.Debug("cancelling worker context")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping worker pool")
	pool.Stop()

	log.Info("===========================================")
	log.Info("PrepDeck Server Stopped")
	log.Info("===========================================")
}
