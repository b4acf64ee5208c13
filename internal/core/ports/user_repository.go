package ports

import (
	"context"

	"github.com/devassignment/member-service/internal/core/domain"
)

// UserRepository is the user directory: it resolves usernames to stored
// credentials and roles.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
