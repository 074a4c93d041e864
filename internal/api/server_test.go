package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

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
)

const pipelinePassword = "Passw0rd!"

// outbox records every mail instead of delivering it.
type outbox struct {
	mu       sync.Mutex
	messages []mailer.Message
}

func (o *outbox) Send(_ context.Context, msg mailer.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, msg)
	return nil
}

func (o *outbox) lastToken(to string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := len(o.messages) - 1; i >= 0; i-- {
		if o.messages[i].To != to {
			continue
		}
		parts := strings.SplitN(o.messages[i].PlainText, "token=", 2)
		if len(parts) == 2 {
			token, _ := url.QueryUnescape(strings.Fields(parts[1])[0])
			return token
		}
	}
	return ""
}

type PipelineTestSuite struct {
	suite.Suite
	router *gin.Engine
	repo   *memory.Repository
	tokens *security.TokenService
	hasher *security.PasswordHasher
	mail   *outbox
}

func (s *PipelineTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := nopLogger()

	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	tokens, err := security.NewTokenService(secret, time.Hour)
	s.Require().NoError(err)
	blobs, err := media.NewLocalStore(s.T().TempDir())
	s.Require().NoError(err)

	s.repo = memory.NewRepository()
	s.tokens = tokens
	s.hasher = security.NewPasswordHasher(4)
	s.mail = &outbox{}

	composer := mailer.NewComposer("Business Feed", "api.example.com")
	files := service.NewFileService(s.repo, blobs, log)
	auth := service.NewAuthService(s.repo, tokens, s.hasher, s.mail, composer, log)

	cfg := &config.Config{
		AppName:     "Business Feed",
		AppVersion:  "test",
		AppDeeplink: testDeeplink,
		Storage:     config.StorageConfig{MaxUploadBytes: 10 << 20},
	}
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(1000, time.Hour), ratelimit.DefaultLimits())

	server := NewServer(
		Services{
			Auth:     auth,
			OAuth:    auth,
			Users:    service.NewUserService(s.repo, files, s.hasher, s.mail, composer, log),
			Business: service.NewBusinessService(s.repo, files, log),
			Posts:    service.NewPostService(s.repo, files, log),
			Files:    files,
		},
		cfg,
		middleware.NewAuthMiddleware(auth, log),
		middleware.NewRateLimitMiddleware(limiter, log),
		middleware.NewValidationMiddleware(log),
		nil,
		log,
	)

	s.router = gin.New()
	server.SetupRoutes(s.router)
}

func TestPipeline(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PipelineTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, "")
}

func (s *PipelineTestSuite) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req, "")
}

func (s *PipelineTestSuite) seedBusiness(name string) *domain.Business {
	business, err := s.repo.Business().Create(context.Background(), &domain.Business{Name: name})
	s.Require().NoError(err)
	return business
}

// seedMember creates an active user and returns it with a valid token.
func (s *PipelineTestSuite) seedMember(email string, role domain.Role, businessID string) (*domain.User, string) {
	hash, err := s.hasher.Hash(pipelinePassword)
	s.Require().NoError(err)
	user, err := s.repo.User().Create(context.Background(), &domain.User{
		Email:         email,
		PasswordHash:  hash,
		Role:          role,
		BusinessID:    businessID,
		ProfileStatus: domain.ProfileStatusActive,
		Provider:      domain.AuthProviderEmail,
	})
	s.Require().NoError(err)
	token, err := s.tokens.Issue(user)
	s.Require().NoError(err)
	return user, token
}

func (s *PipelineTestSuite) TestRegisterThenLogin() {
	// Act
	registered := s.postJSON("/v1/auth/register", dto.RegisterRequest{FirstName: "Alice", Email: "alice@x", Password: pipelinePassword})
	login := s.postJSON("/v1/auth/login", dto.LoginRequest{Email: "alice@x", Password: pipelinePassword})
	wrong := s.postJSON("/v1/auth/login", dto.LoginRequest{Email: "alice@x", Password: "Wr0ngPass!"})

	// Assert
	s.Equal(http.StatusCreated, registered.Code)
	s.Require().Equal(http.StatusOK, login.Code)
	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(login.Body.Bytes(), &resp))
	subject, err := s.tokens.Subject(resp.Token)
	s.Require().NoError(err)
	s.Equal("alice@x", subject)
	s.Equal(http.StatusUnauthorized, wrong.Code)
	s.NotEmpty(s.mail.lastToken("alice@x"))
}

func (s *PipelineTestSuite) TestRegisterTwiceConflicts() {
	// Arrange
	req := dto.RegisterRequest{Email: "alice@x", Password: pipelinePassword}
	s.Require().Equal(http.StatusCreated, s.postJSON("/v1/auth/register", req).Code)

	// Act
	w := s.postJSON("/v1/auth/register", req)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}

func (s *PipelineTestSuite) TestPasswordResetFlow() {
	// Arrange
	s.seedMember("alice@x", domain.RoleDefault, "")
	requested := s.postJSON("/v1/auth/password-reset/request", dto.EmailRequest{Email: "alice@x"})
	s.Require().Equal(http.StatusOK, requested.Code)
	token := s.mail.lastToken("alice@x")
	s.Require().NotEmpty(token)

	mismatch := url.Values{"token": {token}, "password": {"N3wPassw0rd!"}, "confirmPassword": {"Different1!"}}
	match := url.Values{"token": {token}, "password": {"N3wPassw0rd!"}, "confirmPassword": {"N3wPassw0rd!"}}

	// Act
	failed := s.postForm("/v1/auth/password-reset", mismatch)
	succeeded := s.postForm("/v1/auth/password-reset", match)
	login := s.postJSON("/v1/auth/login", dto.LoginRequest{Email: "alice@x", Password: "N3wPassw0rd!"})

	// Assert
	s.Equal(http.StatusOK, failed.Code)
	s.Contains(failed.Body.String(), service.MsgPasswordsDoNotMatch)
	s.Equal(http.StatusOK, succeeded.Code)
	s.Contains(succeeded.Body.String(), service.MsgPasswordReset)
	s.Equal(http.StatusOK, login.Code)
}

func (s *PipelineTestSuite) TestTenantBoundary() {
	// Arrange
	t1 := s.seedBusiness("t1")
	t2 := s.seedBusiness("t2")
	author1, _ := s.seedMember("a@t1", domain.RoleDefault, t1.ID)
	author2, _ := s.seedMember("a@t2", domain.RoleDefault, t2.ID)
	_, tokenB := s.seedMember("b@t2", domain.RoleDefault, t2.ID)

	ctx := context.Background()
	_, err := s.repo.Post().Create(ctx, &domain.Post{Title: "t1 post", UserID: author1.ID, BusinessID: t1.ID, CreationDateUTC: time.Now()})
	s.Require().NoError(err)
	_, err = s.repo.Post().Create(ctx, &domain.Post{Title: "t2 post", UserID: author2.ID, BusinessID: t2.ID, CreationDateUTC: time.Now()})
	s.Require().NoError(err)

	// Act
	posts := s.do(httptest.NewRequest(http.MethodGet, "/v1/posts/", nil), tokenB)
	info := s.do(httptest.NewRequest(http.MethodGet, "/v1/business/"+t1.ID+"/info", nil), tokenB)
	ownInfo := s.do(httptest.NewRequest(http.MethodGet, "/v1/business/"+t2.ID+"/info", nil), tokenB)

	// Assert
	s.Require().Equal(http.StatusOK, posts.Code)
	var listed []dto.PostResponse
	s.Require().NoError(json.Unmarshal(posts.Body.Bytes(), &listed))
	s.Require().Len(listed, 1)
	s.Equal("t2 post", listed[0].Title)
	s.Equal(http.StatusForbidden, info.Code)
	s.Equal(http.StatusOK, ownInfo.Code)
}

func (s *PipelineTestSuite) TestUnauthenticatedRateLimit() {
	var last *httptest.ResponseRecorder

	// Act
	for i := 0; i < 31; i++ {
		req := httptest.NewRequest(http.MethodGet, "/actuator/info", nil)
		req.RemoteAddr = "203.0.113.7:4321"
		last = s.do(req, "")
		if i < 30 {
			s.Require().Equal(http.StatusOK, last.Code, "request %d", i+1)
		}
	}

	// Assert
	s.Equal(http.StatusTooManyRequests, last.Code)
	retryAfter, err := strconv.Atoi(last.Header().Get("Retry-After"))
	s.Require().NoError(err)
	s.GreaterOrEqual(retryAfter, 1)
}

func (s *PipelineTestSuite) TestUnauthenticatedRateLimitIgnoresForwardedFor() {
	var last *httptest.ResponseRecorder

	// Act
	for i := 0; i < 31; i++ {
		req := httptest.NewRequest(http.MethodGet, "/actuator/info", nil)
		req.RemoteAddr = "203.0.113.9:4321"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.%d.%d", i/250, i%250+1))
		last = s.do(req, "")
		if i < 30 {
			s.Require().Equal(http.StatusOK, last.Code, "request %d", i+1)
		}
	}

	// Assert
	s.Equal(http.StatusTooManyRequests, last.Code)
}

func (s *PipelineTestSuite) TestImageUploadAndTenantScopedRetrieval() {
	// Arrange
	t1 := s.seedBusiness("t1")
	t2 := s.seedBusiness("t2")
	_, owner := s.seedMember("owner@t1", domain.RoleDefault, t1.ID)
	_, outsider := s.seedMember("outsider@t2", domain.RoleDefault, t2.ID)

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})
	var pixel bytes.Buffer
	s.Require().NoError(png.Encode(&pixel, img))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "pixel.png")
	s.Require().NoError(err)
	_, err = part.Write(pixel.Bytes())
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	upload := httptest.NewRequest(http.MethodPost, "/v1/files/upload/image", &body)
	upload.Header.Set("Content-Type", writer.FormDataContentType())

	// Act
	uploaded := s.do(upload, owner)
	s.Require().Equal(http.StatusOK, uploaded.Code, uploaded.Body.String())
	var metadata dto.FileMetadataResponse
	s.Require().NoError(json.Unmarshal(uploaded.Body.Bytes(), &metadata))

	own := s.do(httptest.NewRequest(http.MethodGet, "/v1/files/"+metadata.StoredFilename, nil), owner)
	foreign := s.do(httptest.NewRequest(http.MethodGet, "/v1/files/"+metadata.StoredFilename, nil), outsider)

	// Assert
	s.Equal("image/png", metadata.MimeType)
	s.Equal(http.StatusOK, own.Code)
	s.Equal("image/png", own.Header().Get("Content-Type"))
	_, err = png.Decode(own.Body)
	s.NoError(err)
	s.Equal(http.StatusForbidden, foreign.Code)
}

func (s *PipelineTestSuite) TestPublicPathsAndAuthentication() {
	// Act
	health := s.do(httptest.NewRequest(http.MethodGet, "/actuator/health", nil), "")
	anonymous := s.do(httptest.NewRequest(http.MethodGet, "/v1/posts/", nil), "")
	forged := s.do(httptest.NewRequest(http.MethodGet, "/v1/posts/", nil), "not-a-jwt")

	// Assert
	s.Equal(http.StatusOK, health.Code)
	s.JSONEq(`{"status":"UP"}`, health.Body.String())
	s.Equal(http.StatusUnauthorized, anonymous.Code)
	s.Equal(http.StatusUnauthorized, forged.Code)
}

func (s *PipelineTestSuite) TestRoleAndLifecycleGates() {
	// Arrange
	business := s.seedBusiness("t1")
	_, pending := s.seedMember("pending@t1", domain.RolePending, business.ID)
	_, superAdmin := s.seedMember("root@x", domain.RoleSuperAdmin, "")
	member, memberToken := s.seedMember("member@t1", domain.RoleDefault, business.ID)

	// Act
	pendingPosts := s.do(httptest.NewRequest(http.MethodGet, "/v1/posts/", nil), pending)
	superPosts := s.do(httptest.NewRequest(http.MethodGet, "/v1/posts/", nil), superAdmin)

	business.Deleted = true
	s.Require().NoError(s.repo.Business().Update(context.Background(), business))
	deletedTenant := s.do(httptest.NewRequest(http.MethodGet, "/v1/files/", nil), memberToken)

	member.ProfileStatus = domain.ProfileStatusInactive
	s.Require().NoError(s.repo.User().Update(context.Background(), member))
	inactive := s.do(httptest.NewRequest(http.MethodGet, "/v1/files/", nil), memberToken)

	// Assert
	s.Equal(http.StatusForbidden, pendingPosts.Code)
	s.Equal(http.StatusForbidden, superPosts.Code)
	s.Equal(http.StatusForbidden, deletedTenant.Code)
	s.Equal(http.StatusForbidden, inactive.Code)
}
