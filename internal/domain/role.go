package domain

import (
	"slices"
	"strings"
)

// Role represents a user role in the system
type Role string

const (
	// RoleSuperAdmin manages every business and bypasses the lifecycle gate
	RoleSuperAdmin Role = "SUPER_ADMIN"

	// RoleAdmin manages the users and content of a single business
	RoleAdmin Role = "ADMIN"

	// RoleDefault is a regular member of a business
	RoleDefault Role = "DEFAULT"

	// RolePending is assigned at sign-up until an admin grants access
	RolePending Role = "PENDING"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleDefault, RolePending}

// AssignableRoles are the roles that may be granted through the API
var AssignableRoles = []Role{RoleAdmin, RoleDefault}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// ParseRole normalizes a client supplied role name
func ParseRole(role string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(role)))
	return r, slices.Contains(ValidRoles, r)
}

// HasAnyRole checks if role is one of the specified roles
func HasAnyRole(role Role, allowed ...Role) bool {
	return slices.Contains(allowed, role)
}

// IsAdministrative reports whether the role belongs to the admin rate-limit tier
func (r Role) IsAdministrative() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ProfileStatus is the lifecycle state of a user profile
type ProfileStatus string

const (
	ProfileStatusActive    ProfileStatus = "ACTIVE"
	ProfileStatusInactive  ProfileStatus = "INACTIVE"
	ProfileStatusSuspended ProfileStatus = "SUSPENDED"
)

var ValidProfileStatuses = []ProfileStatus{ProfileStatusActive, ProfileStatusInactive, ProfileStatusSuspended}

func ParseProfileStatus(status string) (ProfileStatus, bool) {
	s := ProfileStatus(strings.ToUpper(strings.TrimSpace(status)))
	return s, slices.Contains(ValidProfileStatuses, s)
}

// AuthProvider identifies how a user authenticates
type AuthProvider string

const (
	AuthProviderEmail  AuthProvider = "EMAIL"
	AuthProviderGoogle AuthProvider = "GOOGLE"
	AuthProviderApple  AuthProvider = "APPLE"
)

// ParseAuthProvider maps a provider registration id such as "google" to its provider
func ParseAuthProvider(provider string) (AuthProvider, bool) {
	p := AuthProvider(strings.ToUpper(strings.TrimSpace(provider)))
	switch p {
	case AuthProviderEmail, AuthProviderGoogle, AuthProviderApple:
		return p, true
	}
	return "", false
}
