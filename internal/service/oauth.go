package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/repository"
)

// OAuthProfile holds the attributes read from a provider after a successful
// code exchange.
type OAuthProfile struct {
	Email   string
	Name    string
	Picture string
}

// CompleteOAuthLogin finds or creates the user behind profile and issues a
// token for it. Accounts created here are trusted to own their email.
func (s *AuthService) CompleteOAuthLogin(ctx context.Context, provider string, profile OAuthProfile) (string, error) {
	authProvider, ok := domain.ParseAuthProvider(provider)
	if !ok || authProvider == domain.AuthProviderEmail {
		return "", invalid("unsupported provider %q", provider)
	}
	email := domain.CanonicalEmail(profile.Email)
	if email == "" {
		return "", invalid("provider %s returned no email", provider)
	}

	user, err := s.repo.User().GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		user, err = s.repo.User().Create(ctx, &domain.User{
			FirstName:       strings.TrimSpace(profile.Name),
			Email:           email,
			Role:            domain.RolePending,
			ProfileStatus:   domain.ProfileStatusActive,
			EmailVerified:   true,
			Provider:        authProvider,
			CreationDateUTC: s.now().UTC(),
		})
		if errors.Is(err, repository.ErrDuplicate) {
			// A concurrent first login created the account.
			user, err = s.repo.User().GetByEmail(ctx, email)
			if err != nil {
				return "", err
			}
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to create oauth user: %w", err)
		}
		s.logger.Info("Created user from oauth login", zap.String("email", email), zap.String("provider", string(authProvider)))
	case err != nil:
		return "", err
	case user.Role == "":
		user.Role = domain.RolePending
		if err := s.repo.User().Update(ctx, user); err != nil {
			return "", fmt.Errorf("failed to assign default role: %w", err)
		}
	}

	return s.tokens.Issue(user)
}
