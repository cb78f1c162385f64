package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/solveighty/Coffee-Blend/configs"
)

// Nil is returned by Get when the key does not exist.
const Nil = redis.Nil

// RedisCache is a thin string-valued key/value wrapper. Values are stored
// verbatim; callers own their serialization.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr, password string, db int) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		return nil
	}

	log.Println("Connected to Redis successfully")
	return &RedisCache{client: client}
}

// NewRedisCacheFromConfig builds the cache from the environment-backed
// config block, the way client processes pick up their redis cart slot.
func NewRedisCacheFromConfig(cfg configs.RedisConfig) *RedisCache {
	return NewRedisCache(cfg.URL, cfg.Password, cfg.DB)
}

func (r *RedisCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	return count > 0, err
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
