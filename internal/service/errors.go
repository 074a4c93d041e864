package service

import (
	"errors"
	"fmt"

	"github.com/kingrain94/business-feed-api/internal/policy"
	"github.com/kingrain94/business-feed-api/internal/security"
)

var (
	// Token errors
	ErrMalformedToken   = security.ErrMalformedToken
	ErrExpiredToken     = security.ErrExpiredToken
	ErrUnknownPrincipal = errors.New("unknown principal")

	// Lifecycle errors
	ErrProfileInactive = errors.New("profile is not active")
	ErrTenantDeleted   = errors.New("business has been deleted")

	// Authorization errors
	ErrInsufficientRole  = policy.ErrInsufficientRole
	ErrCrossTenantAccess = policy.ErrCrossTenantAccess
	ErrNotOwner          = policy.ErrNotOwner
	ErrNotPublic         = policy.ErrNotPublic

	ErrForbidden               = errors.New("forbidden")
	ErrCurrentPasswordMismatch = kindOf(ErrForbidden, "Current password is incorrect.")

	ErrInvalidCredentials = errors.New("Invalid email or password")

	// Not found errors
	ErrNotFound         = errors.New("not found")
	ErrUserNotFound     = kindOf(ErrNotFound, "User not found.")
	ErrBusinessNotFound = kindOf(ErrNotFound, "Business not found.")
	ErrPostNotFound     = kindOf(ErrNotFound, "Post not found.")
	ErrFileNotFound     = kindOf(ErrNotFound, "File not found.")

	// Conflict errors
	ErrConflict           = errors.New("conflict")
	ErrEmailAlreadyExists = kindOf(ErrConflict, "Email is already registered")

	ErrUpstream = errors.New("upstream failure")
)

// kindError carries a client-facing message while matching its kind
// sentinel under errors.Is.
type kindError struct {
	kind error
	msg  string
}

func kindOf(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// ValidationError is a 400 whose message is shown to the client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError is a failure of a collaborator such as the mail provider,
// blob storage or the image codec. Message is safe to return to the client;
// Err is only logged.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

func upstream(message string, err error) error {
	return &UpstreamError{Message: message, Err: err}
}
