package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/business-feed-api/docs"
	"github.com/kingrain94/business-feed-api/internal/api"
	"github.com/kingrain94/business-feed-api/internal/config"
	"github.com/kingrain94/business-feed-api/internal/mailer"
	"github.com/kingrain94/business-feed-api/internal/media"
	"github.com/kingrain94/business-feed-api/internal/middleware"
	"github.com/kingrain94/business-feed-api/internal/ratelimit"
	"github.com/kingrain94/business-feed-api/internal/repository/postgres"
	"github.com/kingrain94/business-feed-api/internal/security"
	"github.com/kingrain94/business-feed-api/internal/service"
	"github.com/kingrain94/business-feed-api/internal/service/queue"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// @title           Business Feed API
// @version         1.0
// @description     Multi-tenant business feed: identity, posts, likes and media.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	ctx := context.Background()

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	if err := postgres.Migrate(ctx, dbConnections.Writer); err != nil {
		appLogger.Fatal("Failed to migrate database", err)
	}
	appLogger.Info("Database connections established - writer and reader connected")

	repo := postgres.NewPostgresRepository(dbConnections)
	checkers := map[string]api.HealthChecker{"database": dbConnections}

	tokens, err := security.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration())
	if err != nil {
		appLogger.Fatal("Invalid JWT configuration", err)
	}
	hasher := security.NewPasswordHasher(cfg.BcryptCost)

	var rateLimitStore ratelimit.Store
	switch cfg.RateLimit.Backend {
	case config.RateLimitBackendRedis:
		redisConfig, err := config.LoadRedisConfig()
		if err != nil {
			appLogger.Fatal("Failed to load Redis config", err)
		}
		redisClient, err := redisConfig.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", err)
		}
		defer redisClient.Close()
		rateLimitStore = ratelimit.NewRedisStore(redisClient, "ratelimit:", cfg.RateLimit.CacheTTL)
		checkers["redis"] = redisPinger(redisClient)
	default:
		rateLimitStore = ratelimit.NewMemoryStore(cfg.RateLimit.CacheSize, cfg.RateLimit.CacheTTL)
	}
	limiter := ratelimit.NewLimiter(rateLimitStore, ratelimit.Limits{
		Unauthenticated: cfg.RateLimit.Unauthenticated,
		Authenticated:   cfg.RateLimit.Authenticated,
		Admin:           cfg.RateLimit.Admin,
		Window:          cfg.RateLimit.Window(),
	})

	var blobs media.BlobStore
	switch cfg.Storage.Backend {
	case config.StorageBackendS3:
		s3Config, err := config.LoadS3Config()
		if err != nil {
			appLogger.Fatal("Failed to load S3 config", err)
		}
		s3Client, err := s3Config.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to create S3 client", err)
		}
		blobs = media.NewS3Store(s3Client, s3Config.BucketName, cfg.Storage.S3Prefix)
	default:
		localStore, err := media.NewLocalStore(cfg.Storage.UploadPath)
		if err != nil {
			appLogger.Fatal("Failed to prepare upload directory", err)
		}
		blobs = localStore
	}

	var sender mailer.Sender
	switch cfg.Mail.Transport {
	case config.MailTransportSQS:
		sqsConfig, err := config.LoadSQSConfig()
		if err != nil {
			appLogger.Fatal("Failed to load SQS config", err)
		}
		sqsClient, err := sqsConfig.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to connect to SQS", err)
		}
		sender = mailer.NewQueueSender(queue.NewSQSService(sqsClient, sqsConfig))
	default:
		sender = mailer.NewSendGridSender(cfg.Mail.SendGridAPIKey, cfg.Mail.From, cfg.Mail.FromName, appLogger)
	}
	composer := mailer.NewComposer(cfg.AppName, cfg.ServerName)

	fileService := service.NewFileService(repo, blobs, appLogger)
	authService := service.NewAuthService(repo, tokens, hasher, sender, composer, appLogger)

	server := api.NewServer(
		api.Services{
			Auth:     authService,
			OAuth:    authService,
			Users:    service.NewUserService(repo, fileService, hasher, sender, composer, appLogger),
			Business: service.NewBusinessService(repo, fileService, appLogger),
			Posts:    service.NewPostService(repo, fileService, appLogger),
			Files:    fileService,
		},
		cfg,
		middleware.NewAuthMiddleware(authService, appLogger),
		middleware.NewRateLimitMiddleware(limiter, appLogger),
		middleware.NewValidationMiddleware(appLogger),
		checkers,
		appLogger,
	)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	docs.SwaggerInfo.Title = cfg.AppName + " API"
	docs.SwaggerInfo.Version = cfg.AppVersion
	docs.SwaggerInfo.Host = cfg.ServerName
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.SetupRoutes(router)

	srv := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Listening on %s", cfg.ListenAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}

func redisPinger(client *redis.Client) api.HealthCheckFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
