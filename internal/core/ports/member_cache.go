package ports

import (
	"context"

	"github.com/devassignment/member-service/internal/core/domain"
)

// MemberCache is a read-through cache keyed by member id. Get returns
// (nil, nil) on a miss. Entries have no eviction policy beyond explicit
// invalidation on write and their TTL.
type MemberCache interface {
	Get(ctx context.Context, id string) (*domain.Member, error)
	Put(ctx context.Context, m *domain.Member) error
	Evict(ctx context.Context, id string) error
}
