package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/config"
	"github.com/kingrain94/business-feed-api/internal/mailer"
	"github.com/kingrain94/business-feed-api/internal/service/queue"
	"github.com/kingrain94/business-feed-api/internal/worker"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV")).With(zap.String("component", "mail_worker"))

	mailConfig, err := config.LoadMailConfig()
	if err != nil {
		appLogger.Fatal("Failed to load mail config", err)
	}
	sqsConfig, err := config.LoadSQSConfig()
	if err != nil {
		appLogger.Fatal("Failed to load SQS config", err)
	}

	sqsClient, err := sqsConfig.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	appLogger.Info("SQS connection established for mail worker")

	sender := mailer.NewSendGridSender(mailConfig.SendGridAPIKey, mailConfig.From, mailConfig.FromName, appLogger)
	mailWorker := worker.NewMailWorker(
		sqsService,
		sender,
		appLogger,
		sqsConfig.WorkerCount,
		sqsConfig.PollInterval,
	)

	mailWorker.Start()
	appLogger.Info("Mail worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	mailWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
