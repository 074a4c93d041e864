package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/config"
	"github.com/kingrain94/business-feed-api/internal/repository/postgres"
	"github.com/kingrain94/business-feed-api/internal/worker"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV")).With(zap.String("component", "cleanup_worker"))

	cleanupConfig, err := config.LoadCleanupConfig()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	pgRepo := postgres.NewPostgresRepository(dbConnections)
	cleanupWorker := worker.NewCleanupWorker(pgRepo, appLogger, cleanupConfig.Interval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	appLogger.Infof("Sweeping expired tokens every %s", cleanupConfig.Interval)
	cleanupWorker.Start()

	<-sigChan
	appLogger.Info("Shutting down cleanup worker...")
	cleanupWorker.Stop()
}
