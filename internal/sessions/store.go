package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store keeps the server-side "is logged in" flag for admin sessions; the
// cookie only carries the opaque token.
type Store interface {
	Create(ctx context.Context) (token string, err error)
	Valid(ctx context.Context, token string) (bool, error)
	Destroy(ctx context.Context, token string) error
}

const keyPrefix = "admin_session:"

type sessionState struct {
	LoggedIn  bool      `json:"logged_in"`
	CreatedAt time.Time `json:"created_at"`
}

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context) (string, error) {
	token := uuid.NewString()

	b, err := json.Marshal(sessionState{LoggedIn: true, CreatedAt: time.Now().UTC()})
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+token, b, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Valid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	raw, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var st sessionState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		// corrupt state: treat as logged out and drop it
		_ = s.rdb.Del(ctx, keyPrefix+token).Err()
		return false, nil
	}
	return st.LoggedIn, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
