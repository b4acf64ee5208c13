package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devassignment/member-service/internal/api/metrics"
	"github.com/devassignment/member-service/internal/core/domain"
	"github.com/devassignment/member-service/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	defaultSortSpec = "lastName,asc"
)

// sortFields maps public sort keys to storage-level field names. Anything
// outside this whitelist is rejected before it reaches the store.
var sortFields = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"email":       "email",
	"dateOfBirth": "date_of_birth",
	"createdAt":   "created_at",
}

// MemberService implements CRUD and filtered, paginated listing over
// member records. A nil cache disables caching.
type MemberService struct {
	repo   ports.MemberRepository
	cache  ports.MemberCache
	logger zerolog.Logger
}

func NewMemberService(repo ports.MemberRepository, cache ports.MemberCache, logger zerolog.Logger) *MemberService {
	return &MemberService{repo: repo, cache: cache, logger: logger}
}

// List returns one page of members matching the optional name filters.
// page is zero-based; the transport layer owns the one-based translation.
func (s *MemberService) List(ctx context.Context, firstName, lastName string, page, size int, sort string) (*ports.PagedMembers, error) {
	if page < 0 {
		return nil, domain.ErrInvalidPage
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	field, desc, err := parseSort(sort)
	if err != nil {
		return nil, err
	}

	items, total, err := s.repo.List(ctx, ports.ListMembersQuery{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		SortField: field,
		SortDesc:  desc,
		Page:      page,
		Size:      size,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &ports.PagedMembers{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page+1 >= totalPages,
	}, nil
}

// parseSort resolves a "<field>,<asc|desc>" spec. The direction defaults
// to ascending unless the second token equals "desc" case-insensitively.
func parseSort(spec string) (field string, desc bool, err error) {
	if strings.TrimSpace(spec) == "" {
		spec = defaultSortSpec
	}
	parts := strings.Split(spec, ",")
	f, ok := sortFields[strings.TrimSpace(parts[0])]
	if !ok {
		return "", false, domain.ErrInvalidSort
	}
	desc = len(parts) > 1 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
	return f, desc, nil
}

// GetByID serves a member from the read-through cache when possible.
// Cache failures degrade to a store read; they are never user-visible.
func (s *MemberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	if s.cache != nil {
		m, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("member_id", id).Msg("cache read failed")
		case m != nil:
			metrics.MemberCacheTotal.WithLabelValues("hit").Inc()
			return m, nil
		default:
			metrics.MemberCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, m); err != nil {
			s.logger.Warn().Err(err).Str("member_id", id).Msg("cache write failed")
		}
	}
	return m, nil
}

// Create inserts a new member. The email check here is a fast-path UX
// improvement; the unique index in the store is the real guarantee and
// surfaces as the same conflict error.
func (s *MemberService) Create(ctx context.Context, in ports.MemberInput) (*domain.Member, error) {
	exists, err := s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	now := time.Now().UTC()
	m := &domain.Member{
		ID:          uuid.NewString(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		DateOfBirth: in.DateOfBirth,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	metrics.MembersCreatedTotal.Inc()
	s.logger.Info().Str("member_id", m.ID).Str("email", m.Email).Msg("member created")
	return m, nil
}

// Update fully overwrites the writable fields, refreshes the updated
// timestamp, and invalidates the cache entry.
func (s *MemberService) Update(ctx context.Context, id string, in ports.MemberInput) (*domain.Member, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.FirstName = in.FirstName
	m.LastName = in.LastName
	m.Email = in.Email
	m.DateOfBirth = in.DateOfBirth
	m.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.evict(ctx, id)
	s.logger.Info().Str("member_id", id).Msg("member updated")
	return m, nil
}

// Delete removes the record and invalidates its cache entry.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.evict(ctx, id)
	s.logger.Info().Str("member_id", id).Msg("member deleted")
	return nil
}

func (s *MemberService) evict(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Evict(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("member_id", id).Msg("cache evict failed")
	}
}
