package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devassignment/member-service/internal/api/metrics"
	"github.com/devassignment/member-service/internal/core/domain"
	"github.com/devassignment/member-service/internal/core/ports"
)

const loginPath = "/api/v1/auth/login"

// principalKey is the echo context key under which the authenticated
// principal is stored.
const principalKey = "principal"

// TokenVerifier is the subset of the token service the gate needs. Subject
// extraction and full validation are split so the gate can decide whether a
// claimed identity exists before paying for a user directory lookup.
type TokenVerifier interface {
	ExtractSubject(token string) string
	Validate(token, username string) bool
}

// Authenticate is the per-request authentication gate. It never rejects a
// request: a missing, malformed, or invalid bearer token simply means the
// request proceeds anonymously and the role middleware decides downstream.
// When the token verifies and its subject resolves to a known user, the
// principal is installed in the request context. An already-established
// principal is never overwritten.
func Authenticate(tokens TokenVerifier, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == loginPath {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}
			token := parts[1]

			subject := tokens.ExtractSubject(token)
			if subject == "" {
				return next(c)
			}

			if _, ok := PrincipalFrom(c); ok {
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("unknown_subject").Inc()
				log.Warn().
					Str("subject", subject).
					Str("path", c.Request().URL.Path).
					Msg("token subject does not resolve to a user")
				return next(c)
			}

			if !tokens.Validate(token, user.Username) {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				log.Warn().
					Str("username", user.Username).
					Str("path", c.Request().URL.Path).
					Msg("invalid or expired token")
				return next(c)
			}

			c.Set(principalKey, &domain.Principal{
				Username:   user.Username,
				Role:       user.Role,
				RemoteAddr: c.RealIP(),
			})
			return next(c)
		}
	}
}

// PrincipalFrom returns the authenticated principal for the request, if any.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok && p != nil
}
