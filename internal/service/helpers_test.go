package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/mailer"
	"github.com/kingrain94/business-feed-api/internal/media"
	"github.com/kingrain94/business-feed-api/internal/repository"
	"github.com/kingrain94/business-feed-api/internal/repository/memory"
	"github.com/kingrain94/business-feed-api/internal/security"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

const testPassword = "Passw0rd!"

// MockSender is a mock implementation of mailer.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// testEnv wires every service against the in-memory repository and a
// temporary blob directory.
type testEnv struct {
	repo     *memory.Repository
	tokens   *security.TokenService
	hasher   *security.PasswordHasher
	sender   *MockSender
	auth     *AuthService
	files    *FileService
	posts    *PostService
	users    *UserService
	business *BusinessService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	tokens, err := security.NewTokenService(secret, time.Hour)
	require.NoError(t, err)

	blobs, err := media.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	log := &logger.Logger{Logger: zap.NewNop()}
	repo := memory.NewRepository()
	hasher := security.NewPasswordHasher(4)
	sender := new(MockSender)
	composer := mailer.NewComposer("Business Feed", "api.example.com")
	files := NewFileService(repo, blobs, log)

	return &testEnv{
		repo:     repo,
		tokens:   tokens,
		hasher:   hasher,
		sender:   sender,
		auth:     NewAuthService(repo, tokens, hasher, sender, composer, log),
		files:    files,
		posts:    NewPostService(repo, files, log),
		users:    NewUserService(repo, files, hasher, sender, composer, log),
		business: NewBusinessService(repo, files, log),
	}
}

func (e *testEnv) seedBusiness(t *testing.T, name string) *domain.Business {
	t.Helper()
	business, err := e.repo.Business().Create(context.Background(), &domain.Business{Name: name})
	require.NoError(t, err)
	return business
}

func (e *testEnv) seedUser(t *testing.T, email string, role domain.Role, businessID string) *domain.User {
	t.Helper()
	hash, err := e.hasher.Hash(testPassword)
	require.NoError(t, err)

	user, err := e.repo.User().Create(context.Background(), &domain.User{
		FirstName:     "Test",
		Email:         email,
		PasswordHash:  hash,
		Role:          role,
		BusinessID:    businessID,
		ProfileStatus: domain.ProfileStatusActive,
		Provider:      domain.AuthProviderEmail,
	})
	require.NoError(t, err)
	return user
}

// failingBlobs rejects every write.
type failingBlobs struct {
	media.BlobStore
}

func (failingBlobs) Put(context.Context, string, []byte, string) error {
	return errors.New("bucket unavailable")
}

// staleUsers answers email lookups as if another request had not yet
// committed its insert, while writes still hit the shared store.
type staleUsers struct {
	repository.UserRepository
	misses int
}

func (u *staleUsers) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

func (u *staleUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u.misses > 0 {
		u.misses--
		return nil, repository.ErrNotFound
	}
	return u.UserRepository.GetByEmail(ctx, email)
}

type racedRepository struct {
	*memory.Repository
	users *staleUsers
}

func (r racedRepository) User() repository.UserRepository { return r.users }

// racedAuth builds an AuthService whose email checks miss the first
// staleLookups existing rows.
func (e *testEnv) racedAuth(staleLookups int) *AuthService {
	repo := racedRepository{
		Repository: e.repo,
		users:      &staleUsers{UserRepository: e.repo.User(), misses: staleLookups},
	}
	composer := mailer.NewComposer("Business Feed", "api.example.com")
	return NewAuthService(repo, e.tokens, e.hasher, e.sender, composer, &logger.Logger{Logger: zap.NewNop()})
}

func pngUpload(t *testing.T) dto.FileUpload {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return dto.FileUpload{Filename: "pixel.png", Data: buf.Bytes()}
}

// tokenFromMail extracts the token query parameter from a mailed link.
func tokenFromMail(t *testing.T, msg mailer.Message) string {
	t.Helper()
	parts := strings.SplitN(msg.PlainText, "token=", 2)
	require.Len(t, parts, 2, "mail carries no token link")
	return strings.Fields(parts[1])[0]
}

func strPtr(s string) *string {
	return &s
}
