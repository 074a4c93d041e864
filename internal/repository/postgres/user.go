package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByEmail matches the canonical (lower-cased) email exactly
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).First(&user, "email = ?", domain.CanonicalEmail(email)).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", domain.CanonicalEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return r.writerDB.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.readerDB.WithContext(ctx).Order("creation_date_utc DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.User, error) {
	var users []domain.User
	if err := getTenantScope(r.readerDB, ctx, businessID).Order("creation_date_utc DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
