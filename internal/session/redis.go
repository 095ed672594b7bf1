package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisKV backs sessions with one Redis hash per session ID. Storage
// failures are logged and swallowed: the session store is best-effort, not
// transactional.
type RedisKV struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisKV builds the production session backing. A zero ttl disables
// expiry.
func NewRedisKV(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisKV {
	return &RedisKV{client: client, ttl: ttl, logger: logger}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

// Get reads one field of the session hash.
func (r *RedisKV) Get(ctx context.Context, sid, key string) (string, bool) {
	val, err := r.client.HGet(ctx, sessionKey(sid), key).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Debug("session read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

// Set writes one field and refreshes the session TTL.
func (r *RedisKV) Set(ctx context.Context, sid, key, value string) {
	if err := r.client.HSet(ctx, sessionKey(sid), key, value).Err(); err != nil {
		r.logger.Debug("session write failed", zap.String("key", key), zap.Error(err))
		return
	}
	if r.ttl > 0 {
		_ = r.client.Expire(ctx, sessionKey(sid), r.ttl).Err()
	}
}

// Delete removes individual fields.
func (r *RedisKV) Delete(ctx context.Context, sid string, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := r.client.HDel(ctx, sessionKey(sid), keys...).Err(); err != nil {
		r.logger.Debug("session delete failed", zap.Error(err))
	}
}

// Clear drops the whole session hash in one DEL.
func (r *RedisKV) Clear(ctx context.Context, sid string) {
	if err := r.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		r.logger.Debug("session clear failed", zap.Error(err))
	}
}
