package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

type PostRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPostRepository(writerDB, readerDB *gorm.DB) *PostRepository {
	return &PostRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	if err := r.readerDB.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// Update writes the editable columns only so a concurrent like toggle is not overwritten
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", post.ID).
		Select("title", "description", "location", "image_url").
		Updates(post).Error
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Post{}, "id = ?", id).Error
}

func (r *PostRepository) ListByBusiness(ctx context.Context, businessID string, page domain.PageRequest) ([]domain.Post, error) {
	var posts []domain.Post
	err := getTenantScope(r.readerDB, ctx, businessID).
		Order("creation_date_utc DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
