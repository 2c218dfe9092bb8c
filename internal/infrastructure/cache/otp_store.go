package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPStore keeps one login code per email. GETDEL makes consumption atomic:
// a code can never be used twice, even by concurrent verify calls.
type OTPStore struct{ rdb *redis.Client }

func NewOTPStore(rdb *redis.Client) *OTPStore { return &OTPStore{rdb: rdb} }

func key(email string) string { return "otp:" + email }

func (s *OTPStore) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key(email), code, ttl).Err()
}

func (s *OTPStore) GetDel(ctx context.Context, email string) (string, error) {
	return s.rdb.GetDel(ctx, key(email)).Result()
}
