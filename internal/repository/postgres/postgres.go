package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/business-feed-api/internal/config"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/repository"
)

type postgresRepository struct {
	userRepo        repository.UserRepository
	businessRepo    repository.BusinessRepository
	resetTokenRepo  repository.PasswordResetTokenRepository
	verifyTokenRepo repository.EmailVerificationTokenRepository
	postRepo        repository.PostRepository
	likeRepo        repository.LikeRepository
	fileRepo        repository.FileRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	writer, reader := dbConnections.Writer, dbConnections.Reader
	return &postgresRepository{
		userRepo:        NewUserRepository(writer, reader),
		businessRepo:    NewBusinessRepository(writer, reader),
		resetTokenRepo:  NewPasswordResetTokenRepository(writer, reader),
		verifyTokenRepo: NewEmailVerificationTokenRepository(writer, reader),
		postRepo:        NewPostRepository(writer, reader),
		likeRepo:        NewLikeRepository(writer, reader),
		fileRepo:        NewFileRepository(writer, reader),
	}
}

// Migrate creates or updates every table the service owns
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&domain.User{},
		&domain.Business{},
		&domain.PasswordResetToken{},
		&domain.EmailVerificationToken{},
		&domain.Post{},
		&domain.Like{},
		&domain.FileMetadata{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Business() repository.BusinessRepository {
	return r.businessRepo
}

func (r *postgresRepository) PasswordResetToken() repository.PasswordResetTokenRepository {
	return r.resetTokenRepo
}

func (r *postgresRepository) EmailVerificationToken() repository.EmailVerificationTokenRepository {
	return r.verifyTokenRepo
}

func (r *postgresRepository) Post() repository.PostRepository {
	return r.postRepo
}

func (r *postgresRepository) Like() repository.LikeRepository {
	return r.likeRepo
}

func (r *postgresRepository) File() repository.FileRepository {
	return r.fileRepo
}
