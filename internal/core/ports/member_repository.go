package ports

import (
	"context"

	"github.com/devassignment/member-service/internal/core/domain"
)

// ListMembersQuery carries the fully resolved query parameters for listing
// members. Name filters are case-insensitive substring matches; an empty
// filter imposes no constraint. SortField is a storage-level field name
// already whitelisted by the service layer.
type ListMembersQuery struct {
	FirstName string
	LastName  string
	SortField string
	SortDesc  bool
	Page      int // zero-based
	Size      int
}

// MemberRepository defines persistence operations for members.
type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, m *domain.Member) error
	Delete(ctx context.Context, id string) error
	// List returns a page of members matching the query and the total count
	// of matching rows.
	List(ctx context.Context, q ListMembersQuery) ([]*domain.Member, int64, error)
}
