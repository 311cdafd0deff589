package signup

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
)

const selectionKeyPrefix = "selection:"

// selectionCommands is the slice of the redis API the store uses.
// *redis.Client satisfies it.
type selectionCommands interface {
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisStore keeps pending selections in Redis sets. Compared to MemoryStore
// it adds TTL-based eviction of abandoned selections: the expiry is refreshed
// on every toggle, so an entry only disappears after the user has gone quiet
// for the full TTL. A zero TTL disables eviction.
type RedisStore struct {
	client selectionCommands
	ttl    time.Duration
}

func NewRedisStore(client selectionCommands, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func selectionKey(userID int64) string {
	return fmt.Sprintf("%s%d", selectionKeyPrefix, userID)
}

func (s *RedisStore) Toggle(ctx context.Context, userID int64, slot string) ([]string, bool, error) {
	key := selectionKey(userID)

	added, err := s.client.SAdd(ctx, key, slot).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to toggle slot %q: %w", slot, err)
	}
	selected := added == 1
	if !selected {
		// Already a member, so this toggle removes it.
		if err := s.client.SRem(ctx, key, slot).Err(); err != nil {
			return nil, false, fmt.Errorf("failed to toggle slot %q: %w", slot, err)
		}
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			return nil, false, fmt.Errorf("failed to refresh selection TTL: %w", err)
		}
	}

	set, err := s.members(ctx, key)
	if err != nil {
		return nil, false, err
	}
	return set, selected, nil
}

func (s *RedisStore) Get(ctx context.Context, userID int64) ([]string, error) {
	return s.members(ctx, selectionKey(userID))
}

func (s *RedisStore) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, selectionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}
	return nil
}

func (s *RedisStore) members(ctx context.Context, key string) ([]string, error) {
	set, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	if len(set) == 0 {
		return nil, nil
	}
	sort.Strings(set)
	return set, nil
}
