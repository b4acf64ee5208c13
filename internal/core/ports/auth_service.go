package ports

import (
	"context"

	"github.com/devassignment/member-service/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed token for the
	// user. Wrong passwords and unknown usernames fail the same way.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
