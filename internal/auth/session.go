package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// SessionManager tracks invalidated session tokens in Redis. A token is
// valid until it expires or is blacklisted by logout; there is no other
// server-side session state.
type SessionManager struct {
	rdb *redis.Client
}

func NewSessionManager(rdb *redis.Client) *SessionManager {
	return &SessionManager{rdb: rdb}
}

// Invalidate blacklists a token for the remainder of its lifetime.
// Used by logout to clear the session unconditionally.
func (s *SessionManager) Invalidate(token string, ttl time.Duration) error {
	key := fmt.Sprintf("blogr:black:%s", token)
	return s.rdb.Set(ctx, key, "1", ttl).Err()
}

// IsInvalidated reports whether a token has been blacklisted.
func (s *SessionManager) IsInvalidated(token string) (bool, error) {
	key := fmt.Sprintf("blogr:black:%s", token)
	res, err := s.rdb.Exists(ctx, key).Result()
	return res == 1, err
}
