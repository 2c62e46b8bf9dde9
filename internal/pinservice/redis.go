package pinservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAttempts is an AttemptStore shared by every process pointing at the same redis.
// Attempt counters are a fixed window (INCR + EXPIRE); a lock leaves the
// counter to run out with its window.
type RedisAttempts struct {
	client *redis.Client
	prefix string
}

func NewRedisAttempts(client *redis.Client, prefix string) *RedisAttempts {
	if prefix == "" {
		prefix = "walletguard:pin:"
	}
	return &RedisAttempts{client: client, prefix: prefix}
}

func (r *RedisAttempts) failKey(key string) string { return r.prefix + "fail:" + key }
func (r *RedisAttempts) lockKey(key string) string { return r.prefix + "lock:" + key }

func (r *RedisAttempts) Fail(ctx context.Context, key string, window time.Duration) (int, error) {
	k := r.failKey(key)
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}

func (r *RedisAttempts) Lock(ctx context.Context, key string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.lockKey(key), until.UnixNano(), ttl).Err()
}

func (r *RedisAttempts) LockedUntil(ctx context.Context, key string) (time.Time, error) {
	v, err := r.client.Get(ctx, r.lockKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	ns, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, ns).UTC(), nil
}

func (r *RedisAttempts) Reset(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.failKey(key), r.lockKey(key)).Err()
}
