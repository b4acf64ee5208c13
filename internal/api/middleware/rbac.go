package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type roleError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RequireRoles gates a route on the principal's role. Anonymous requests
// get 401; authenticated requests without a listed role get 403.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, roleError{
					Error:   "Unauthorized",
					Message: "Authentication required",
				})
			}
			if _, ok := allowed[p.Role]; !ok {
				return c.JSON(http.StatusForbidden, roleError{
					Error:   "Forbidden",
					Message: "Insufficient role",
				})
			}
			return next(c)
		}
	}
}
