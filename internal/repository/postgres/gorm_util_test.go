package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/kingrain94/business-feed-api/internal/repository"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("connection reset")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, want: repository.ErrNotFound},
		{name: "wrapped record not found", err: fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), want: repository.ErrNotFound},
		{name: "unique violation", err: gorm.ErrDuplicatedKey, want: repository.ErrDuplicate},
		{name: "other errors pass through", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err), tt.want)
		})
	}
}
