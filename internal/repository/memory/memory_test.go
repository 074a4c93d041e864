package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/repository"
)

func TestUserCreate_RejectsDuplicateCanonicalEmail(t *testing.T) {
	// Arrange
	repo := NewRepository()
	_, err := repo.User().Create(context.Background(), &domain.User{Email: "Someone@Example.com"})
	require.NoError(t, err)

	// Act
	_, err = repo.User().Create(context.Background(), &domain.User{Email: "someone@example.com"})

	// Assert
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	users, err := repo.User().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
