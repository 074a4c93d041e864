package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

type BusinessRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBusinessRepository(writerDB, readerDB *gorm.DB) *BusinessRepository {
	return &BusinessRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BusinessRepository) Create(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	if business.ID == "" {
		business.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(business).Error; err != nil {
		return nil, err
	}
	return business, nil
}

func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	var business domain.Business
	if err := r.readerDB.WithContext(ctx).First(&business, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &business, nil
}

func (r *BusinessRepository) Update(ctx context.Context, business *domain.Business) error {
	return r.writerDB.WithContext(ctx).Save(business).Error
}

func (r *BusinessRepository) ListActive(ctx context.Context) ([]domain.Business, error) {
	var businesses []domain.Business
	if err := r.readerDB.WithContext(ctx).Where("deleted = ?", false).Order("name").Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}
