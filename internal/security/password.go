package security

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 50
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72

	// SpecialCharacters is the set a password must draw at least one rune from
	SpecialCharacters = `!@#$%^&*()-_=+\|[{]};:'",<.>/?`
)

// PolicyViolation carries the single human-readable rule a password broke.
type PolicyViolation struct {
	Message string
}

func (e *PolicyViolation) Error() string {
	return e.Message
}

// ValidatePassword checks the strength rules in a fixed order and reports
// the first one that fails.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < MinPasswordLength || length > MaxPasswordLength {
		return &PolicyViolation{Message: fmt.Sprintf("Password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)}
	}
	if len(password) > MaxPasswordBytes {
		return &PolicyViolation{Message: fmt.Sprintf("Password must not exceed %d bytes", MaxPasswordBytes)}
	}
	if !strings.ContainsFunc(password, isASCIIUpper) {
		return &PolicyViolation{Message: "Password must contain at least one uppercase letter"}
	}
	if !strings.ContainsFunc(password, isASCIILower) {
		return &PolicyViolation{Message: "Password must contain at least one lowercase letter"}
	}
	if !strings.ContainsAny(password, SpecialCharacters) {
		return &PolicyViolation{Message: "Password must contain at least one special character"}
	}
	if !strings.ContainsFunc(password, isASCIIDigit) {
		return &PolicyViolation{Message: "Password must contain at least one number"}
	}
	return nil
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// PasswordHasher wraps bcrypt with a configured cost.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Verify compares in constant time; an empty hash never matches.
func (h *PasswordHasher) Verify(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
