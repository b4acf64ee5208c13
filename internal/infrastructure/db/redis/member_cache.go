package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devassignment/member-service/internal/core/domain"
)

const defaultCacheTTL = time.Hour

// MemberCache provides an id-keyed read-through cache for members backed by
// Redis. Values are JSON-encoded. Key format: member:<id>
type MemberCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMemberCache creates a MemberCache wrapping the given Redis client.
func NewMemberCache(client *redis.Client, ttl time.Duration) *MemberCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &MemberCache{client: client, ttl: ttl}
}

// Get returns the cached member for id, or (nil, nil) on a miss. A corrupt
// entry is dropped and behaves like a miss.
func (c *MemberCache) Get(ctx context.Context, id string) (*domain.Member, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var m domain.Member
	if err := json.Unmarshal(data, &m); err != nil {
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, nil
	}
	return &m, nil
}

// Put stores the member under its id (expires after the configured TTL).
func (c *MemberCache) Put(ctx context.Context, m *domain.Member) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, c.key(m.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Evict invalidates the entry for id. Evicting an absent key is a no-op.
func (c *MemberCache) Evict(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}

func (c *MemberCache) key(id string) string {
	return "member:" + id
}
