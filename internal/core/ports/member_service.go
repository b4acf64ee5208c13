package ports

import (
	"context"

	"github.com/devassignment/member-service/internal/core/domain"
)

// MemberInput carries the writable fields of a member for create and
// update operations. Update is a full overwrite.
type MemberInput struct {
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth string
}

// PagedMembers is a read-only projection of one result page. Page is the
// zero-based index that was actually queried.
type PagedMembers struct {
	Items         []*domain.Member
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
}

type MemberService interface {
	// List returns one page of members. page is zero-based; sort is a
	// "<field>,<asc|desc>" spec with ascending as the default direction.
	List(ctx context.Context, firstName, lastName string, page, size int, sort string) (*PagedMembers, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	Create(ctx context.Context, in MemberInput) (*domain.Member, error)
	Update(ctx context.Context, id string, in MemberInput) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}
