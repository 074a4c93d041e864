package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

type FileRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewFileRepository(writerDB, readerDB *gorm.DB) *FileRepository {
	return &FileRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *FileRepository) Create(ctx context.Context, file *domain.FileMetadata) (*domain.FileMetadata, error) {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(file).Error; err != nil {
		return nil, err
	}
	return file, nil
}

func (r *FileRepository) GetByStoredFilename(ctx context.Context, storedFilename string) (*domain.FileMetadata, error) {
	var file domain.FileMetadata
	if err := r.readerDB.WithContext(ctx).First(&file, "stored_filename = ?", storedFilename).Error; err != nil {
		return nil, translateError(err)
	}
	return &file, nil
}

func (r *FileRepository) Update(ctx context.Context, file *domain.FileMetadata) error {
	return r.writerDB.WithContext(ctx).Save(file).Error
}

func (r *FileRepository) ListActiveByBusiness(ctx context.Context, businessID string) ([]domain.FileMetadata, error) {
	var files []domain.FileMetadata
	err := getTenantScope(r.readerDB, ctx, businessID).
		Where("status = ?", domain.FileStatusActive).
		Order("upload_date DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}
