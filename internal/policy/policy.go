// Package policy holds the role and tenant-ownership rules applied on top of
// the route table.
package policy

import (
	"errors"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

var (
	ErrInsufficientRole  = errors.New("insufficient role")
	ErrCrossTenantAccess = errors.New("resource belongs to another business")
	ErrNotOwner          = errors.New("resource belongs to another user")
	ErrNotPublic         = errors.New("file is not publicly accessible")
)

func RequireRole(user *domain.User, roles ...domain.Role) error {
	if !domain.HasAnyRole(user.Role, roles...) {
		return ErrInsufficientRole
	}
	return nil
}

// RequireSameTenant fails for unbound users as well as foreign tenants.
func RequireSameTenant(user *domain.User, businessID string) error {
	if !user.HasTenant() || user.BusinessID != businessID {
		return ErrCrossTenantAccess
	}
	return nil
}

func CanManageBusinesses(user *domain.User) error {
	return RequireRole(user, domain.RoleSuperAdmin)
}

func CanUpdateBusiness(user *domain.User, businessID string) error {
	switch user.Role {
	case domain.RoleSuperAdmin:
		return nil
	case domain.RoleAdmin:
		return RequireSameTenant(user, businessID)
	default:
		return ErrInsufficientRole
	}
}

func CanViewBusinessInfo(user *domain.User, businessID string) error {
	return RequireSameTenant(user, businessID)
}

func CanListUsers(user *domain.User) error {
	return RequireRole(user, domain.RoleSuperAdmin, domain.RoleAdmin)
}

func CanInvite(user *domain.User) error {
	return RequireRole(user, domain.RoleAdmin)
}

// CanUpdateUser decides whether caller may touch target at all. Field-level
// limits are applied by the user service.
func CanUpdateUser(caller, target *domain.User) error {
	switch {
	case caller.Role == domain.RoleSuperAdmin:
		return nil
	case caller.ID == target.ID:
		return nil
	case target.Role == domain.RoleSuperAdmin:
		return ErrInsufficientRole
	case caller.Role != domain.RoleAdmin:
		return ErrInsufficientRole
	case !target.HasTenant():
		return nil
	default:
		return RequireSameTenant(caller, target.BusinessID)
	}
}

func CanCreatePost(user *domain.User) error {
	if err := RequireRole(user, domain.RoleDefault); err != nil {
		return err
	}
	if !user.HasTenant() {
		return ErrCrossTenantAccess
	}
	return nil
}

func CanUpdatePost(user *domain.User, post *domain.Post) error {
	return ownPost(user, post, domain.RoleAdmin)
}

func CanDeletePost(user *domain.User, post *domain.Post) error {
	return ownPost(user, post, domain.RoleDefault)
}

func ownPost(user *domain.User, post *domain.Post, role domain.Role) error {
	if err := RequireRole(user, role); err != nil {
		return err
	}
	if err := RequireSameTenant(user, post.BusinessID); err != nil {
		return err
	}
	if post.UserID != user.ID {
		return ErrNotOwner
	}
	return nil
}

func CanToggleLike(user *domain.User, post *domain.Post) error {
	if err := RequireRole(user, domain.RoleAdmin, domain.RoleDefault); err != nil {
		return err
	}
	return RequireSameTenant(user, post.BusinessID)
}

func CanAccessFile(user *domain.User, file *domain.FileMetadata) error {
	return RequireSameTenant(user, file.BusinessID)
}

func CanAccessPublicFile(file *domain.FileMetadata) error {
	if !file.PublicAccess {
		return ErrNotPublic
	}
	return nil
}
