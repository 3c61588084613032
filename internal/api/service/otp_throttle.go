package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisOTPThrottle counts OTP requests per email in redis with a rolling
// one-hour window. Redis is only a throttle here, codes themselves live
// in the database.
type redisOTPThrottle struct {
	client *redis.Client
	limit  int
}

func NewRedisOTPThrottle(client *redis.Client, limit int) OTPThrottle {
	return &redisOTPThrottle{client: client, limit: limit}
}

func (t *redisOTPThrottle) Allow(ctx context.Context, email string) (bool, error) {
	key := "otp:req:" + email

	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := t.client.Expire(ctx, key, time.Hour).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(t.limit), nil
}
