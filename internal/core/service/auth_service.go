package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devassignment/member-service/internal/api/metrics"
	"github.com/devassignment/member-service/internal/core/domain"
	"github.com/devassignment/member-service/internal/core/ports"
)

// AuthService implements credential verification and token issuance.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Login verifies username/password and returns a signed token. An unknown
// username fails identically to a wrong password so the endpoint does not
// reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			s.logger.Warn().Str("username", username).Msg("login for unknown username")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.logger.Warn().Str("username", username).Msg("login with wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}
