package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the fixed key the token is stored under.
const DefaultRedisKey = "sellerdash:session:token"

// RedisTokenStore keeps the token in Redis, for deployments where the
// client runs headless across hosts and a file store does not travel.
type RedisTokenStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisTokenStore creates a Redis-backed token store. A zero ttl keeps
// the token until explicitly cleared.
func NewRedisTokenStore(client *redis.Client, key string, ttl time.Duration) *RedisTokenStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisTokenStore{client: client, key: key, ttl: ttl}
}

// Load reads the stored token. A missing key means no session.
func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("session: failed to read token from redis: %w", err)
	}
	return token, nil
}

// Save writes the token under the fixed key.
func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: failed to write token to redis: %w", err)
	}
	return nil
}

// Clear deletes the token key. A missing key is not an error.
func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("session: failed to delete token from redis: %w", err)
	}
	return nil
}

var _ TokenStore = (*RedisTokenStore)(nil)
