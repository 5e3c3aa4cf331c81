package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the history log as a Redis list of JSON entries.
// RPUSH appends atomically, so concurrent writers never interleave rows.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore returns a RedisStore using the list at key.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Append(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("%w: rpush %s: %w", ErrStoreUnavailable, s.key, err)
	}
	return nil
}

func (s *RedisStore) ReadAll(ctx context.Context) ([]Entry, error) {
	items, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: lrange %s: %w", ErrStoreUnavailable, s.key, err)
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("%w: %w: item %d: %w", ErrStoreUnavailable, ErrMalformed, i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
