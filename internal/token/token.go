// Package token issues and verifies signed stateless session tokens.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the only failure Verify surfaces. Callers never learn
// whether parsing, the signature, or claim validation failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed payload of a session token.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Identity is the verified content of a token.
type Identity struct {
	UserID int64
	Role   string
}

// Service signs and verifies session tokens with a server-held secret.
// The secret is injected at construction, never read from ambient state.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService constructs a Service. A ttl of zero issues non-expiring tokens.
func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl, now: time.Now}
}

// Issue produces a signed token binding subjectID and role. It has no side
// effects beyond signing and never touches storage.
func (s *Service) Issue(subjectID int64, role string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatInt(subjectID, 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
		Role: role,
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature against the server secret and returns the
// identity carried by the token. Tokens signed with another method, expired
// tokens, and tokens missing the subject or role claim all fail.
func (s *Service) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.Subject == "" || claims.Role == "" {
		return Identity{}, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: userID, Role: claims.Role}, nil
}
