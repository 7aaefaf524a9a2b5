package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessions keeps login sessions as redis hashes keyed by account email.
type RedisSessions struct {
	Client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{Client: client}
}

func sessionKey(email string) string {
	return "user:session:" + email
}

func (s *RedisSessions) SaveSession(ctx context.Context, email string, fields map[string]any, ttl time.Duration) error {
	key := sessionKey(email)
	pipe := s.Client.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisSessions) SessionExists(ctx context.Context, email string) (bool, error) {
	n, err := s.Client.Exists(ctx, sessionKey(email)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessions) DropSession(ctx context.Context, email string) error {
	return s.Client.Del(ctx, sessionKey(email)).Err()
}
