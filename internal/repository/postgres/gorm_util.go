package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/business-feed-api/internal/repository"
)

// translateError maps gorm sentinel errors onto repository errors
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	}
	return err
}

// getTenantScope returns a scoped database instance with tenant isolation
func getTenantScope(db *gorm.DB, ctx context.Context, businessID string) *gorm.DB {
	return db.WithContext(ctx).Where("business_id = ?", businessID)
}
