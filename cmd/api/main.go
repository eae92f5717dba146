package main

// @title PanoProbe API
// @version 1.0.0
// @description Оценка сложности панорам Street View для игр в духе GeoGuessr.
// @description
// @description Основные возможности:
// @description - Эвристическая оценка по стране, урбанизации, качеству съёмки и ориентирам
// @description - Объединение с оценкой vision-модели (CLIP), если она доступна
// @description - Эталонные панорамы для проверки калибровки

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/panoprobe/docs"
	"github.com/panoprobe/internal/app"
	"github.com/panoprobe/internal/config"
	httpDelivery "github.com/panoprobe/internal/delivery/http"
	"github.com/panoprobe/internal/delivery/http/handler"
	"github.com/panoprobe/internal/pkg/logger"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "panoprobe-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting PanoProbe API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("features_source", cfg.Features.Source),
		zap.Bool("vision_enabled", cfg.Vision.Enabled),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Collaborators and use case
	deps, err := app.Build(cfg, log, false)
	if err != nil {
		log.Fatal("Failed to initialize dependencies", zap.Error(err))
	}

	log.Info("Use cases initialized")

	// 4. HTTP
	analysisHandler := handler.NewAnalysisHandler(deps.Analysis, log)
	server := httpDelivery.NewServer(cfg, log, analysisHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	deps.Close()

	log.Info("Server stopped successfully")
}
