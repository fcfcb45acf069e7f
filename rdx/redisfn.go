package rdx

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tripsculptor/config"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func Init() {
	Conn = redis.NewClient(&redis.Options{
		Addr:     config.Cfg.RedisAddr,
		Password: config.Cfg.RedisPassword,
		DB:       config.Cfg.RedisDB,
	})
}

// CacheGet loads a cached JSON value into dest. A miss, a decode failure, or
// Redis being unreachable all report false; the caller falls through to the
// upstream lookup.
func CacheGet(ctx context.Context, key string, dest interface{}) bool {
	if Conn == nil {
		return false
	}
	raw, err := Conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Println("Redis get error:", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Println("Redis cache decode error for key", key, ":", err)
		return false
	}
	return true
}

// CacheSet stores a JSON value with a TTL. Failures are logged and ignored;
// the cache is best effort only.
func CacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if Conn == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Println("Redis cache encode error for key", key, ":", err)
		return
	}
	if err := Conn.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Println("Redis set error:", err)
	}
}
