package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

type PasswordResetTokenRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPasswordResetTokenRepository(writerDB, readerDB *gorm.DB) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{writerDB: writerDB, readerDB: readerDB}
}

func (r *PasswordResetTokenRepository) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(token).Error
}

// GetByToken reads from the writer so a token issued a moment ago is visible
func (r *PasswordResetTokenRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	var t domain.PasswordResetToken
	if err := r.writerDB.WithContext(ctx).First(&t, "token = ?", token).Error; err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

func (r *PasswordResetTokenRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.PasswordResetToken{}, "id = ?", id).Error
}

func (r *PasswordResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).Delete(&domain.PasswordResetToken{}, "expiry_date <= ?", now)
	return result.RowsAffected, result.Error
}

type EmailVerificationTokenRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewEmailVerificationTokenRepository(writerDB, readerDB *gorm.DB) *EmailVerificationTokenRepository {
	return &EmailVerificationTokenRepository{writerDB: writerDB, readerDB: readerDB}
}

func (r *EmailVerificationTokenRepository) Create(ctx context.Context, token *domain.EmailVerificationToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(token).Error
}

func (r *EmailVerificationTokenRepository) GetByToken(ctx context.Context, token string) (*domain.EmailVerificationToken, error) {
	var t domain.EmailVerificationToken
	if err := r.writerDB.WithContext(ctx).First(&t, "token = ?", token).Error; err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

func (r *EmailVerificationTokenRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.EmailVerificationToken{}, "id = ?", id).Error
}

func (r *EmailVerificationTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.EmailVerificationToken{}, "user_id = ?", userID).Error
}

func (r *EmailVerificationTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).Delete(&domain.EmailVerificationToken{}, "expiry_date <= ?", now)
	return result.RowsAffected, result.Error
}
