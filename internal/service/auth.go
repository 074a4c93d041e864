package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/mailer"
	"github.com/kingrain94/business-feed-api/internal/repository"
	"github.com/kingrain94/business-feed-api/internal/security"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

const (
	PasswordResetTokenTTL     = 30 * time.Minute
	EmailVerificationTokenTTL = 24 * time.Hour
)

// Messages rendered on the reset and verification pages.
const (
	MsgPasswordsDoNotMatch    = "Passwords do not match."
	MsgInvalidResetToken      = "Invalid token."
	MsgResetTokenExpired      = "Token expired."
	MsgResetProcessingFailed  = "Error processing request."
	MsgPasswordReset          = "Password has been reset successfully!"
	MsgInvalidVerifyToken     = "Invalid verification token."
	MsgVerifyTokenExpired     = "Verification token has expired. Please request a new one."
	MsgEmailVerified          = "Email verified successfully! You can now log in to your account."
	MsgEmailAlreadyVerified   = "Email is already verified."
	MsgVerificationUserAbsent = "User not found."
)

// AuthResult is a user together with a freshly issued bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService struct {
	repo     repository.Repository
	tokens   *security.TokenService
	hasher   *security.PasswordHasher
	sender   mailer.Sender
	composer *mailer.Composer
	logger   *logger.Logger
	now      func() time.Time
}

func NewAuthService(
	repo repository.Repository,
	tokens *security.TokenService,
	hasher *security.PasswordHasher,
	sender mailer.Sender,
	composer *mailer.Composer,
	logger *logger.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		hasher:   hasher,
		sender:   sender,
		composer: composer,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates a PENDING email account and signs it in. The
// verification mail is best effort.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*AuthResult, error) {
	email := domain.CanonicalEmail(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("Invalid email address")
	}

	exists, err := s.repo.User().ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	if err := checkPasswordPolicy(req.Password); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User().Create(ctx, &domain.User{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           email,
		PasswordHash:    hash,
		Role:            domain.RolePending,
		ProfileStatus:   domain.ProfileStatusActive,
		EmailVerified:   false,
		Provider:        domain.AuthProviderEmail,
		CreationDateUTC: s.now().UTC(),
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrEmailAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	if err := s.sendVerification(ctx, user, true); err != nil {
		s.logger.Error("Failed to send verification email", err, zap.String("email", user.Email))
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login answers both unknown email and wrong password with the same error.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*AuthResult, error) {
	user, err := s.repo.User().GetByEmail(ctx, domain.CanonicalEmail(req.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := &domain.PasswordResetToken{
		Token:      uuid.New().String(),
		UserID:     user.ID,
		ExpiryDate: s.now().Add(PasswordResetTokenTTL),
	}
	if err := s.repo.PasswordResetToken().Create(ctx, token); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}

	if err := s.sender.Send(ctx, s.composer.PasswordReset(user.Email, token.Token)); err != nil {
		return upstream("Failed to send email.", err)
	}
	return nil
}

// ResetPassword returns a *ValidationError carrying the page message for
// every rejected submission.
func (s *AuthService) ResetPassword(ctx context.Context, form dto.ResetPasswordForm) error {
	if form.Password != form.ConfirmPassword {
		return invalid(MsgPasswordsDoNotMatch)
	}
	if err := checkPasswordPolicy(form.Password); err != nil {
		return err
	}

	token, err := s.repo.PasswordResetToken().GetByToken(ctx, form.Token)
	if errors.Is(err, repository.ErrNotFound) {
		return invalid(MsgInvalidResetToken)
	}
	if err != nil {
		return err
	}
	if token.Expired(s.now()) {
		return invalid(MsgResetTokenExpired)
	}

	user, err := s.repo.User().GetByID(ctx, token.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return invalid(MsgResetProcessingFailed)
	}
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(form.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.repo.User().Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.repo.PasswordResetToken().Delete(ctx, token.ID); err != nil {
		s.logger.Warn("Failed to delete used reset token", zap.String("user_id", user.ID), zap.Error(err))
	}
	return nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, tokenValue string) error {
	token, err := s.repo.EmailVerificationToken().GetByToken(ctx, tokenValue)
	if errors.Is(err, repository.ErrNotFound) {
		return invalid(MsgInvalidVerifyToken)
	}
	if err != nil {
		return err
	}
	if token.Expired(s.now()) {
		return invalid(MsgVerifyTokenExpired)
	}

	user, err := s.repo.User().GetByID(ctx, token.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return invalid(MsgVerificationUserAbsent)
	}
	if err != nil {
		return err
	}

	user.EmailVerified = true
	if err := s.repo.User().Update(ctx, user); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	if err := s.repo.EmailVerificationToken().Delete(ctx, token.ID); err != nil {
		s.logger.Warn("Failed to delete used verification token", zap.String("user_id", user.ID), zap.Error(err))
	}
	return nil
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return invalid(MsgEmailAlreadyVerified)
	}

	if err := s.sendVerification(ctx, user, false); err != nil {
		return upstream("Failed to send verification email.", err)
	}
	return nil
}

// Me re-resolves the bearer token's subject and echoes the token back.
func (s *AuthService) Me(ctx context.Context, token string) (*AuthResult, error) {
	email, err := s.tokens.Subject(token)
	if err != nil {
		return nil, err
	}
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Authenticate resolves a bearer token to the user it was issued to.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.tokens.Subject(token)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.User().GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnknownPrincipal
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckLifecycle rejects inactive profiles and members of a deleted
// business. SUPER_ADMIN is never blocked. A user without a business, or one
// pointing at a business that no longer exists, has no deletion flag to
// check and passes.
func (s *AuthService) CheckLifecycle(ctx context.Context, user *domain.User) error {
	if user.Role == domain.RoleSuperAdmin {
		return nil
	}
	if user.ProfileStatus != domain.ProfileStatusActive {
		return ErrProfileInactive
	}
	if !user.HasTenant() {
		return nil
	}

	business, err := s.repo.Business().GetByID(ctx, user.BusinessID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if business.Deleted {
		return ErrTenantDeleted
	}
	return nil
}

// sendVerification replaces any earlier verification token for user.
func (s *AuthService) sendVerification(ctx context.Context, user *domain.User, welcome bool) error {
	if err := s.repo.EmailVerificationToken().DeleteByUserID(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete previous verification token: %w", err)
	}

	token := &domain.EmailVerificationToken{
		Token:      uuid.New().String(),
		UserID:     user.ID,
		ExpiryDate: s.now().Add(EmailVerificationTokenTTL),
	}
	if err := s.repo.EmailVerificationToken().Create(ctx, token); err != nil {
		return fmt.Errorf("failed to save verification token: %w", err)
	}

	return s.sender.Send(ctx, s.composer.Verification(user.Email, token.Token, welcome))
}

func (s *AuthService) userByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.User().GetByEmail(ctx, domain.CanonicalEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func checkPasswordPolicy(password string) error {
	var violation *security.PolicyViolation
	if err := security.ValidatePassword(password); errors.As(err, &violation) {
		return invalid("%s", violation.Message)
	}
	return nil
}
