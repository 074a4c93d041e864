package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/mailer"
	"github.com/kingrain94/business-feed-api/internal/policy"
	"github.com/kingrain94/business-feed-api/internal/repository"
	"github.com/kingrain94/business-feed-api/internal/security"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

type UserService struct {
	repo     repository.Repository
	files    *FileService
	hasher   *security.PasswordHasher
	sender   mailer.Sender
	composer *mailer.Composer
	logger   *logger.Logger
}

func NewUserService(
	repo repository.Repository,
	files *FileService,
	hasher *security.PasswordHasher,
	sender mailer.Sender,
	composer *mailer.Composer,
	logger *logger.Logger,
) *UserService {
	return &UserService{
		repo:     repo,
		files:    files,
		hasher:   hasher,
		sender:   sender,
		composer: composer,
		logger:   logger,
	}
}

// List returns every user to SUPER_ADMIN and the members of the caller's
// business to ADMIN.
func (s *UserService) List(ctx context.Context, caller *domain.User) ([]domain.User, error) {
	if err := policy.CanListUsers(caller); err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleSuperAdmin {
		return s.repo.User().List(ctx)
	}
	if !caller.HasTenant() {
		return []domain.User{}, nil
	}
	return s.repo.User().ListByBusiness(ctx, caller.BusinessID)
}

// Update applies the non-nil fields of req to the target user. Every field
// is checked before anything is written, so a rejected request leaves no
// stored picture behind.
func (s *UserService) Update(ctx context.Context, caller *domain.User, targetID string, req dto.UpdateUserRequest, picture *dto.FileUpload) (*domain.User, error) {
	target, err := s.repo.User().GetByID(ctx, targetID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := policy.CanUpdateUser(caller, target); err != nil {
		return nil, err
	}

	self := caller.ID == target.ID
	// An ADMIN reaching an unbound user may only invite it and set its role.
	if !self && caller.Role == domain.RoleAdmin && !target.HasTenant() {
		if req.FirstName != nil || req.LastName != nil || req.Notifications != nil ||
			req.PhoneNumber != nil || req.Password != nil || picture != nil {
			return nil, ErrInsufficientRole
		}
	}

	if req.Role != nil {
		role, err := s.assignableRole(caller, *req.Role)
		if err != nil {
			return nil, err
		}
		target.Role = role
	}

	if req.ProfileStatus != nil {
		if caller.Role != domain.RoleSuperAdmin {
			return nil, ErrInsufficientRole
		}
		status, ok := domain.ParseProfileStatus(*req.ProfileStatus)
		if !ok {
			return nil, invalid("Invalid profile status: %s", *req.ProfileStatus)
		}
		target.ProfileStatus = status
	}

	if req.BusinessID != nil {
		businessID := strings.TrimSpace(*req.BusinessID)
		if err := s.checkBinding(ctx, caller, target, businessID); err != nil {
			return nil, err
		}
		target.BusinessID = businessID
	}

	if req.Password != nil {
		if err := checkPasswordPolicy(*req.Password); err != nil {
			return nil, err
		}
		if self && target.HasPassword() {
			if req.CurrentPassword == nil || !s.hasher.Verify(target.PasswordHash, *req.CurrentPassword) {
				return nil, ErrCurrentPasswordMismatch
			}
		}
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		target.PasswordHash = hash
	}

	setTrimmed(&target.FirstName, req.FirstName)
	setTrimmed(&target.LastName, req.LastName)
	setTrimmed(&target.Notifications, req.Notifications)
	setTrimmed(&target.PhoneNumber, req.PhoneNumber)

	if picture != nil {
		metadata, err := s.files.Store(ctx, caller.ID, target.BusinessID, *picture, StoreOptions{RequireImage: true, Public: true})
		if err != nil {
			return nil, err
		}
		target.ProfilePicture = metadata.StoredFilename
	}

	if err := s.repo.User().Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return target, nil
}

// Invite binds an unbound user to the caller's business and mails them.
func (s *UserService) Invite(ctx context.Context, caller *domain.User, email string) error {
	if err := policy.CanInvite(caller); err != nil {
		return err
	}

	target, err := s.repo.User().GetByEmail(ctx, domain.CanonicalEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return kindOf(ErrNotFound, fmt.Sprintf("User with email %s not found.", email))
	}
	if err != nil {
		return err
	}
	if target.HasTenant() {
		return invalid("User already assigned to a business.")
	}

	business, err := s.repo.Business().GetByID(ctx, caller.BusinessID)
	if err != nil {
		return upstream("Business not found.", err)
	}

	target.BusinessID = business.ID
	if err := s.repo.User().Update(ctx, target); err != nil {
		return fmt.Errorf("failed to bind user: %w", err)
	}

	if err := s.sender.Send(ctx, s.composer.Invitation(target.Email, business.Name)); err != nil {
		return upstream("Failed to send invitation email.", err)
	}
	s.logger.Info("User invited",
		zap.String("email", target.Email),
		zap.String("business_id", business.ID),
		zap.String("invited_by", caller.ID),
	)
	return nil
}

func (s *UserService) assignableRole(caller *domain.User, value string) (domain.Role, error) {
	if !caller.Role.IsAdministrative() {
		return "", ErrInsufficientRole
	}
	role, ok := domain.ParseRole(value)
	switch {
	case !ok:
		return "", invalid("Invalid role: %s", value)
	case role == domain.RoleSuperAdmin:
		return "", ErrInsufficientRole
	case !domain.HasAnyRole(role, domain.AssignableRoles...):
		return "", invalid("Role %s cannot be assigned", role)
	}
	return role, nil
}

// checkBinding enforces who may move a user between businesses. Leaving the
// binding unchanged is always allowed.
func (s *UserService) checkBinding(ctx context.Context, caller, target *domain.User, businessID string) error {
	if businessID == target.BusinessID {
		return nil
	}

	switch caller.Role {
	case domain.RoleSuperAdmin:
	case domain.RoleAdmin:
		if target.HasTenant() || businessID != caller.BusinessID {
			return ErrInsufficientRole
		}
	default:
		return ErrInsufficientRole
	}

	if businessID == "" {
		return nil
	}
	if _, err := s.repo.Business().GetByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBusinessNotFound
		}
		return err
	}
	return nil
}

func setTrimmed(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}
