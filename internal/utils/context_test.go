package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

func TestGetPrincipalFromContext(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "alice@x.io"}

	tests := []struct {
		name    string
		ctx     context.Context
		want    *domain.User
		wantErr error
	}{
		{name: "present", ctx: WithPrincipal(context.Background(), user), want: user},
		{name: "missing", ctx: context.Background(), wantErr: ErrNoPrincipalInContext},
		{name: "wrong type", ctx: context.WithValue(context.Background(), PrincipalKey, "alice"), wantErr: ErrInvalidPrincipalType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetPrincipalFromContext(tt.ctx)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBearerTokenFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), BearerTokenKey, "abc")

	token, err := GetBearerTokenFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = GetBearerTokenFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoTokenInContext)
}
