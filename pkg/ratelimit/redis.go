package ratelimit

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const counterScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RedisLimiter is a fixed-window limiter whose counters live in Redis, so the
// limit is shared across process instances behind a load balancer.
type RedisLimiter struct {
	client    *goredis.Client
	cfg       Config
	keyPrefix string
}

// NewRedis creates a Redis-backed limiter.
func NewRedis(client *goredis.Client, cfg Config) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		cfg:       cfg,
		keyPrefix: "rl:ip:",
	}
}

// Allow implements Limiter. The Lua script makes increment and expiry a
// single atomic step on the Redis side.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	ttlSeconds := int(l.cfg.Window.Seconds())

	result, err := l.client.Eval(ctx, counterScript, []string{l.keyPrefix + key}, ttlSeconds).Result()
	if err != nil {
		return Result{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return Result{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	remaining := l.cfg.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   int(count) <= l.cfg.Limit,
		Remaining: remaining,
		ResetAt:   time.Now().Add(time.Duration(ttl) * time.Second),
	}, nil
}
