package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/service"
	"github.com/kingrain94/business-feed-api/internal/utils"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// MockAuthenticator is a mock implementation of Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthenticator) CheckLifecycle(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	auth   *MockAuthenticator
	router *gin.Engine
	seen   *domain.User
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.auth = new(MockAuthenticator)
	s.seen = nil

	m := NewAuthMiddleware(s.auth, &logger.Logger{Logger: zap.NewNop()})
	s.router = gin.New()
	s.router.Use(m.Authenticate(), m.LifecycleGate(), m.Authorize())

	handler := func(c *gin.Context) {
		if user, err := utils.GetPrincipalFromContext(c.Request.Context()); err == nil {
			s.seen = user
		}
		c.Status(http.StatusOK)
	}
	s.router.GET("/v1/auth/login", handler)
	s.router.GET("/v1/posts/", handler)
	s.router.GET("/v1/users/", handler)
	s.router.GET("/other", handler)
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) do(path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestPublicPathSkipsAuthentication() {
	// Act
	w := s.do("/v1/auth/login", "")

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.auth.AssertNotCalled(s.T(), "Authenticate", mock.Anything, mock.Anything)
}

func (s *AuthMiddlewareTestSuite) TestMissingOrMalformedHeader() {
	s.Equal(http.StatusUnauthorized, s.do("/v1/posts/", "").Code)
	s.Equal(http.StatusUnauthorized, s.do("/v1/posts/", "Token abc").Code)
	s.Equal(http.StatusUnauthorized, s.do("/v1/posts/", "Bearer ").Code)
}

func (s *AuthMiddlewareTestSuite) TestTokenErrors() {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "malformed", err: service.ErrMalformedToken, code: http.StatusUnauthorized},
		{name: "expired", err: service.ErrExpiredToken, code: http.StatusUnauthorized},
		{name: "unknown principal", err: service.ErrUnknownPrincipal, code: http.StatusUnauthorized},
		{name: "store failure", err: errors.New("db down"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.auth.On("Authenticate", mock.Anything, "tok").Return(nil, tt.err)

			w := s.do("/v1/posts/", "Bearer tok")

			s.Equal(tt.code, w.Code)
		})
	}
}

func (s *AuthMiddlewareTestSuite) TestLifecycleGate() {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "active", code: http.StatusOK},
		{name: "inactive profile", err: service.ErrProfileInactive, code: http.StatusForbidden},
		{name: "deleted business", err: service.ErrTenantDeleted, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			user := &domain.User{ID: "u1", Email: "a@x.io", Role: domain.RoleDefault}
			s.auth.On("Authenticate", mock.Anything, "tok").Return(user, nil)
			s.auth.On("CheckLifecycle", mock.Anything, user).Return(tt.err)

			w := s.do("/v1/posts/", "bearer tok")

			s.Equal(tt.code, w.Code)
		})
	}
}

func (s *AuthMiddlewareTestSuite) TestAuthorizeByRoute() {
	tests := []struct {
		name string
		role domain.Role
		path string
		code int
	}{
		{name: "member reads posts", role: domain.RoleDefault, path: "/v1/posts/", code: http.StatusOK},
		{name: "super admin cannot reach posts", role: domain.RoleSuperAdmin, path: "/v1/posts/", code: http.StatusForbidden},
		{name: "pending cannot reach users", role: domain.RolePending, path: "/v1/users/", code: http.StatusForbidden},
		{name: "pending reaches unlisted route", role: domain.RolePending, path: "/other", code: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			user := &domain.User{ID: "u1", Email: "a@x.io", Role: tt.role}
			s.auth.On("Authenticate", mock.Anything, "tok").Return(user, nil)
			s.auth.On("CheckLifecycle", mock.Anything, user).Return(nil)

			w := s.do(tt.path, "Bearer tok")

			s.Equal(tt.code, w.Code)
			if tt.code == http.StatusOK {
				s.Equal(user, s.seen)
			}
		})
	}
}

func (s *AuthMiddlewareTestSuite) TestBearerToken() {
	token, ok := BearerToken("Bearer abc.def")
	s.True(ok)
	s.Equal("abc.def", token)

	_, ok = BearerToken("Basic abc")
	s.False(ok)
}
