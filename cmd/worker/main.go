package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/panoprobe/internal/app"
	"github.com/panoprobe/internal/config"
	"github.com/panoprobe/internal/pkg/logger"
	redisRepo "github.com/panoprobe/internal/repository/redis"
	"github.com/panoprobe/internal/worker"
	"github.com/panoprobe/internal/worker/analysis"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "panoprobe-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting PanoProbe Difficulty Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("consumer_name", cfg.Worker.ConsumerName),
		zap.Duration("shutdown_timeout", cfg.Worker.ShutdownTimeout))

	// 3. Collaborators, use case and Redis
	deps, err := app.Build(cfg, log, true)
	if err != nil {
		log.Fatal("Failed to initialize dependencies", zap.Error(err))
	}
	defer deps.Close()

	streamRepo := redisRepo.NewStreamRepository(deps.Redis.Client(), log)

	// 4. Initialize workers
	difficultyWorker := analysis.NewDifficultyWorker(
		streamRepo,
		deps.Analysis,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.ConsumerName,
		log,
	)

	workerManager := worker.NewWorkerManager(log, cfg.Worker.ShutdownTimeout)
	workerManager.Register(difficultyWorker)

	// 5. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Сначала даём воркерам дообработать текущее сообщение, затем отменяем контекст
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
