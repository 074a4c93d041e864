package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/policy"
	"github.com/kingrain94/business-feed-api/internal/service"
	"github.com/kingrain94/business-feed-api/internal/utils"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

//go:generate mockery --name Authenticator --output ../mocks
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	CheckLifecycle(ctx context.Context, user *domain.User) error
}

type AuthMiddleware struct {
	auth   Authenticator
	logger *logger.Logger
}

func NewAuthMiddleware(auth Authenticator, logger *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		logger: logger,
	}
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// Authenticate resolves the bearer token to a user. Public paths skip it.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if policy.IsPublic(c.Request.URL.Path) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		token, ok := BearerToken(authHeader)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		user, err := m.auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrMalformedToken), errors.Is(err, service.ErrExpiredToken):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		case errors.Is(err, service.ErrUnknownPrincipal):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		default:
			m.logger.Error("Failed to resolve principal", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(string(utils.PrincipalKey), user)
		c.Set(string(utils.BearerTokenKey), token)
		c.Request = c.Request.WithContext(utils.WithPrincipal(c.Request.Context(), user))
		c.Next()
	}
}

// LifecycleGate blocks inactive profiles and members of deleted businesses.
func (m *AuthMiddleware) LifecycleGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := principal(c)
		if !ok {
			c.Next()
			return
		}

		err := m.auth.CheckLifecycle(c.Request.Context(), user)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, service.ErrProfileInactive):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User profile is not active"})
		case errors.Is(err, service.ErrTenantDeleted):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Business has been deleted"})
		default:
			m.logger.Error("Failed to check user lifecycle", err, zap.String("user_id", user.ID))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}

// Authorize applies the route table to the resolved principal.
func (m *AuthMiddleware) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		rule := policy.Match(c.Request.URL.Path)
		if rule.Public {
			c.Next()
			return
		}

		user, ok := principal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}
		if !rule.Permits(user.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

func principal(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(string(utils.PrincipalKey))
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok && user != nil
}
