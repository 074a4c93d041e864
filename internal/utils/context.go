package utils

import (
	"context"
	"errors"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

type ContextKey string

const (
	PrincipalKey   ContextKey = "principal"
	BearerTokenKey ContextKey = "bearer_token"
)

var (
	ErrNoPrincipalInContext = errors.New("no principal found in context")
	ErrInvalidPrincipalType = errors.New("invalid principal type")
	ErrNoTokenInContext     = errors.New("no bearer token found in context")
)

// WithPrincipal stores the authenticated user on ctx.
func WithPrincipal(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, PrincipalKey, user)
}

func GetPrincipalFromContext(c context.Context) (*domain.User, error) {
	value := c.Value(PrincipalKey)
	if value == nil {
		return nil, ErrNoPrincipalInContext
	}

	user, ok := value.(*domain.User)
	if !ok || user == nil {
		return nil, ErrInvalidPrincipalType
	}
	return user, nil
}

func GetBearerTokenFromContext(c context.Context) (string, error) {
	token, ok := c.Value(BearerTokenKey).(string)
	if !ok || token == "" {
		return "", ErrNoTokenInContext
	}
	return token, nil
}
