package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/business-feed-api/internal/config"
	"github.com/kingrain94/business-feed-api/internal/middleware"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// Services are the use cases the HTTP layer exposes.
type Services struct {
	Auth     AuthService
	OAuth    OAuthService
	Users    UserService
	Business BusinessService
	Posts    PostService
	Files    FileService
}

type Server struct {
	auth     *AuthHandler
	oauth    *OAuthHandler
	user     *UserHandler
	business *BusinessHandler
	post     *PostHandler
	file     *FileHandler
	actuator *ActuatorHandler

	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
	validation     *middleware.ValidationMiddleware
	logger         *logger.Logger
	maxUploadBytes int64
	trustedProxies []string
}

func NewServer(
	services Services,
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	checkers map[string]HealthChecker,
	logger *logger.Logger,
) *Server {
	oauth := NewOAuthHandler(services.OAuth, cfg.AppDeeplink, logger)
	oauth.RegisterConfiguredProviders(cfg.OAuth)

	return &Server{
		auth:           NewAuthHandler(services.Auth, logger),
		oauth:          oauth,
		user:           NewUserHandler(services.Users, logger),
		business:       NewBusinessHandler(services.Business, logger),
		post:           NewPostHandler(services.Posts, logger),
		file:           NewFileHandler(services.Files, logger),
		actuator:       NewActuatorHandler(cfg.AppName, cfg.AppVersion, checkers, logger),
		authMiddleware: authMiddleware,
		rateLimit:      rateLimit,
		validation:     validation,
		logger:         logger,
		maxUploadBytes: cfg.Storage.MaxUploadBytes,
		trustedProxies: cfg.TrustedProxies,
	}
}

// SetupRoutes installs the request pipeline and every route on router. The
// pipeline runs on all paths; public paths pass authentication untouched.
func (s *Server) SetupRoutes(router *gin.Engine) {
	if err := router.SetTrustedProxies(s.trustedProxies); err != nil {
		s.logger.Error("Invalid trusted proxies, trusting none", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(middleware.RequestLogger(s.logger))

	router.Use(s.validation.BlockSuspiciousPatterns())
	router.Use(s.validation.SanitizeInput())
	router.Use(s.validation.ValidateRequestSize(s.maxUploadBytes))
	router.Use(s.validation.ValidateContentType(middleware.DefaultContentTypes...))

	router.Use(s.authMiddleware.Authenticate())
	router.Use(s.authMiddleware.LifecycleGate())
	router.Use(s.rateLimit.Limit())
	router.Use(s.authMiddleware.Authorize())

	actuator := router.Group("/actuator")
	{
		actuator.GET("/health", s.actuator.Health)
		actuator.GET("/info", s.actuator.Info)
	}

	router.GET("/oauth2/authorization/:provider", s.oauth.StartAuthorization)
	router.GET("/login/oauth2/code/:provider", s.oauth.Callback)
	router.POST("/login/oauth2/code/:provider", s.oauth.Callback)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", s.auth.Register)
			auth.POST("/login", s.auth.Login)
			auth.POST("/password-reset/request", s.auth.RequestPasswordReset)
			auth.GET("/password-reset", s.auth.ShowResetForm)
			auth.POST("/password-reset", s.auth.ResetPassword)
			auth.GET("/verify-email", s.auth.VerifyEmail)
			auth.POST("/resend-verification", s.auth.ResendVerification)
			auth.GET("/me", s.auth.Me)
		}

		users := v1.Group("/users")
		{
			users.GET("/", s.user.ListUsers)
			users.GET("/invite", s.user.InviteUser)
			users.PUT("/:id", s.user.UpdateUser)
		}

		business := v1.Group("/business")
		{
			business.POST("/", s.business.CreateBusiness)
			business.GET("/", s.business.ListBusinesses)
			business.PUT("/:id", s.business.UpdateBusiness)
			business.DELETE("/:id", s.business.DeleteBusiness)
			business.GET("/:id/info", s.business.GetBusinessInfo)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("/", s.post.CreatePost)
			posts.GET("/", s.post.ListPosts)
			posts.PUT("/:id", s.post.UpdatePost)
			posts.DELETE("/:id", s.post.DeletePost)
			posts.POST("/:id/like", s.post.ToggleLike)
		}

		files := v1.Group("/files")
		{
			files.POST("/upload/image", s.file.UploadImage)
			files.GET("/", s.file.ListFiles)
			files.GET("/public/:name", s.file.GetPublicFile)
			files.GET("/public/:name/metadata", s.file.GetPublicFileMetadata)
			files.GET("/:name", s.file.GetFile)
			files.GET("/:name/metadata", s.file.GetFileMetadata)
			files.DELETE("/:name", s.file.DeleteFile)
		}
	}
}
