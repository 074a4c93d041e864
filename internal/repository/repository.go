package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

// ErrNotFound is returned by every lookup that matches no row
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a write collides with a unique key
var ErrDuplicate = errors.New("duplicate record")

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	ListByBusiness(ctx context.Context, businessID string) ([]domain.User, error)
}

//go:generate mockery --name BusinessRepository --output ../mocks
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	Update(ctx context.Context, business *domain.Business) error
	ListActive(ctx context.Context) ([]domain.Business, error)
}

//go:generate mockery --name PasswordResetTokenRepository --output ../mocks
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *domain.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes every token whose expiry is not after the given
	// instant and reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

//go:generate mockery --name EmailVerificationTokenRepository --output ../mocks
type EmailVerificationTokenRepository interface {
	Create(ctx context.Context, token *domain.EmailVerificationToken) error
	GetByToken(ctx context.Context, token string) (*domain.EmailVerificationToken, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

//go:generate mockery --name PostRepository --output ../mocks
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	// ListByBusiness returns one page sorted by creation date, newest first.
	ListByBusiness(ctx context.Context, businessID string, page domain.PageRequest) ([]domain.Post, error)
}

//go:generate mockery --name LikeRepository --output ../mocks
type LikeRepository interface {
	// Toggle flips the caller's like on a post and moves the post counter in
	// the same unit of work. It returns the new liked state.
	Toggle(ctx context.Context, userID, postID string) (bool, error)
	LikedPostIDs(ctx context.Context, userID string, postIDs []string) (map[string]bool, error)
	DeleteByPost(ctx context.Context, postID string) error
}

//go:generate mockery --name FileRepository --output ../mocks
type FileRepository interface {
	Create(ctx context.Context, file *domain.FileMetadata) (*domain.FileMetadata, error)
	GetByStoredFilename(ctx context.Context, storedFilename string) (*domain.FileMetadata, error)
	Update(ctx context.Context, file *domain.FileMetadata) error
	ListActiveByBusiness(ctx context.Context, businessID string) ([]domain.FileMetadata, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	User() UserRepository
	Business() BusinessRepository
	PasswordResetToken() PasswordResetTokenRepository
	EmailVerificationToken() EmailVerificationTokenRepository
	Post() PostRepository
	Like() LikeRepository
	File() FileRepository
}
