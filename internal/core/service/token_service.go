package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies HS256-signed tokens whose subject is a
// username. It is stateless; expiry is the only invalidation mechanism.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for username, expiring ttl from now.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ExtractSubject returns the subject claim without verifying the token.
// Malformed input yields ""; it is an expected case, never an error. The
// caller must not trust the result until Validate confirms it.
func (s *TokenService) ExtractSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// Validate reports whether token is signed with this service's key, not
// expired, and issued to username. Any failure is a false, not an error.
func (s *TokenService) Validate(token, username string) bool {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return false
	}
	sub, err := claims.GetSubject()
	return err == nil && sub == username
}
