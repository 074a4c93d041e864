package integration

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/api"
	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/config"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/mailer"
	"github.com/kingrain94/business-feed-api/internal/media"
	"github.com/kingrain94/business-feed-api/internal/middleware"
	"github.com/kingrain94/business-feed-api/internal/ratelimit"
	"github.com/kingrain94/business-feed-api/internal/repository/memory"
	"github.com/kingrain94/business-feed-api/internal/security"
	"github.com/kingrain94/business-feed-api/internal/service"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

type discardSender struct{}

func (discardSender) Send(context.Context, mailer.Message) error { return nil }

type stack struct {
	router *gin.Engine
	repo   *memory.Repository
	tokens *security.TokenService
}

// newStack assembles the full request pipeline over in-memory storage.
func newStack(tb testing.TB, limits ratelimit.Limits) *stack {
	tb.Helper()
	gin.SetMode(gin.TestMode)
	log := &logger.Logger{Logger: zap.NewNop()}

	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	tokens, err := security.NewTokenService(secret, time.Hour)
	require.NoError(tb, err)
	blobs, err := media.NewLocalStore(tb.TempDir())
	require.NoError(tb, err)

	repo := memory.NewRepository()
	hasher := security.NewPasswordHasher(4)
	composer := mailer.NewComposer("Business Feed", "localhost")
	files := service.NewFileService(repo, blobs, log)
	auth := service.NewAuthService(repo, tokens, hasher, discardSender{}, composer, log)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(100000, time.Hour), limits)

	server := api.NewServer(
		api.Services{
			Auth:     auth,
			OAuth:    auth,
			Users:    service.NewUserService(repo, files, hasher, discardSender{}, composer, log),
			Business: service.NewBusinessService(repo, files, log),
			Posts:    service.NewPostService(repo, files, log),
			Files:    files,
		},
		&config.Config{AppName: "Business Feed", AppVersion: "test", Storage: config.StorageConfig{MaxUploadBytes: 1 << 20}},
		middleware.NewAuthMiddleware(auth, log),
		middleware.NewRateLimitMiddleware(limiter, log),
		middleware.NewValidationMiddleware(log),
		nil,
		log,
	)

	router := gin.New()
	server.SetupRoutes(router)
	return &stack{router: router, repo: repo, tokens: tokens}
}

func (s *stack) member(tb testing.TB, email, businessID string) string {
	tb.Helper()
	user, err := s.repo.User().Create(context.Background(), &domain.User{
		Email:         email,
		Role:          domain.RoleDefault,
		BusinessID:    businessID,
		ProfileStatus: domain.ProfileStatusActive,
		Provider:      domain.AuthProviderEmail,
	})
	require.NoError(tb, err)
	token, err := s.tokens.Issue(user)
	require.NoError(tb, err)
	return token
}

// unlimited keeps the limiter out of the way of throughput measurements.
func unlimited() ratelimit.Limits {
	return ratelimit.Limits{Unauthenticated: 1 << 30, Authenticated: 1 << 30, Admin: 1 << 30, Window: time.Minute}
}

func BenchmarkListPosts(b *testing.B) {
	// Setup
	s := newStack(b, unlimited())
	business, err := s.repo.Business().Create(context.Background(), &domain.Business{Name: "bench"})
	require.NoError(b, err)
	token := s.member(b, "reader@bench", business.ID)
	for i := 0; i < 100; i++ {
		_, err := s.repo.Post().Create(context.Background(), &domain.Post{
			Title:           fmt.Sprintf("Post %d", i),
			UserID:          "author",
			BusinessID:      business.ID,
			CreationDateUTC: time.Now(),
		})
		require.NoError(b, err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/v1/posts/?size=20", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

// TestHighConcurrencyLikeToggles has many members of one business like the
// same post at once. Every toggle must land exactly once in the counter.
func TestHighConcurrencyLikeToggles(t *testing.T) {
	s := newStack(t, unlimited())
	business, err := s.repo.Business().Create(context.Background(), &domain.Business{Name: "busy"})
	require.NoError(t, err)
	post, err := s.repo.Post().Create(context.Background(), &domain.Post{
		Title:           "Popular",
		UserID:          "author",
		BusinessID:      business.ID,
		CreationDateUTC: time.Now(),
	})
	require.NoError(t, err)

	numUsers := 50
	tokens := make([]string, numUsers)
	for i := range tokens {
		tokens[i] = s.member(t, fmt.Sprintf("fan%d@busy", i), business.ID)
	}

	var liked, failed int32
	var wg sync.WaitGroup
	startTime := time.Now()

	for _, token := range tokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()

			req, _ := http.NewRequest(http.MethodPost, "/v1/posts/"+post.ID+"/like", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			var resp dto.LikeResponse
			if w.Code != http.StatusOK || json.Unmarshal(w.Body.Bytes(), &resp) != nil {
				atomic.AddInt32(&failed, 1)
				return
			}
			if resp.Liked {
				atomic.AddInt32(&liked, 1)
			}
		}(token)
	}
	wg.Wait()

	t.Logf("=== Concurrent Like Results ===")
	t.Logf("Users: %d, total time: %v", numUsers, time.Since(startTime))

	stored, err := s.repo.Post().GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), failed, "No requests should fail")
	assert.Equal(t, int32(numUsers), liked, "Every first toggle likes the post")
	assert.Equal(t, numUsers, stored.Likes)
}

// TestRateLimitUnderConcurrency fires a burst from one address at once; the
// bucket must admit exactly its capacity.
func TestRateLimitUnderConcurrency(t *testing.T) {
	limits := ratelimit.DefaultLimits()
	s := newStack(t, limits)

	numRequests := 200
	var allowed, limited int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req, _ := http.NewRequest(http.MethodGet, "/actuator/info", nil)
			req.RemoteAddr = "198.51.100.20:5555"
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			switch w.Code {
			case http.StatusOK:
				atomic.AddInt32(&allowed, 1)
			case http.StatusTooManyRequests:
				atomic.AddInt32(&limited, 1)
			}
		}()
	}
	wg.Wait()

	t.Logf("=== Rate Limit Burst Results ===")
	t.Logf("Allowed: %d, limited: %d", allowed, limited)

	assert.Equal(t, int32(limits.Unauthenticated), allowed)
	assert.Equal(t, int32(numRequests-limits.Unauthenticated), limited)
}
