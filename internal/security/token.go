package security

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token expired")
)

// minSecretBytes matches the HS256 key size floor.
const minSecretBytes = 32

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 bearer tokens. Expiry is the only
// invalidator; there is no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(base64Secret string, ttl time.Duration) (*TokenService, error) {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("jwt secret is not valid base64: %w", err)
	}
	if len(secret) < minSecretBytes {
		return nil, fmt.Errorf("jwt secret must decode to at least %d bytes, got %d", minSecretBytes, len(secret))
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt expiration must be positive, got %s", ttl)
	}

	return &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source, used by tests to move past expiry.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	clone := *s
	clone.now = now
	return &clone
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now()
	claims := Claims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Subject returns the email the token was issued to.
func (s *TokenService) Subject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *TokenService) Role(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}

// Valid is true iff the signature verifies, the subject matches and the token
// has not expired.
func (s *TokenService) Valid(token, expectedSubject string) bool {
	claims, err := s.parse(token)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}

func (s *TokenService) parse(token string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	default:
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
}
