package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

type LikeRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewLikeRepository(writerDB, readerDB *gorm.DB) *LikeRepository {
	return &LikeRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Toggle holds a row lock on the post while the like row and the counter
// change, so concurrent toggles on one post are applied one at a time.
func (r *LikeRepository) Toggle(ctx context.Context, userID, postID string) (bool, error) {
	var liked bool
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post domain.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, "id = ?", postID).Error; err != nil {
			return translateError(err)
		}

		var like domain.Like
		delta := 1
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			like = domain.Like{ID: uuid.New().String(), UserID: userID, PostID: postID, Liked: true}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			like.Liked = !like.Liked
			if !like.Liked {
				delta = -1
			}
			if err := tx.Model(&like).Update("liked", like.Liked).Error; err != nil {
				return err
			}
		}

		liked = like.Liked
		return tx.Model(&domain.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("GREATEST(likes + ?, 0)", delta)).Error
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *LikeRepository) LikedPostIDs(ctx context.Context, userID string, postIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var ids []string
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Like{}).
		Where("user_id = ? AND post_id IN ? AND liked = ?", userID, postIDs, true).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *LikeRepository) DeleteByPost(ctx context.Context, postID string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Like{}, "post_id = ?", postID).Error
}
