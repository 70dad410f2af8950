package assets

import (
	"context"
	"log"
	"sync"
	"time"

	"reelsmith/config"

	"github.com/redis/go-redis/v9"
)

// Cache stores fetched bytes for the lifetime of a session. Implementations
// never fail a caller: a broken cache behaves like a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
}

// NewCacheFromEnv returns a Redis-backed cache when REDIS_ADDR points at a
// reachable server, otherwise an in-process memo map.
func NewCacheFromEnv() Cache {
	addr := config.GetEnvOrDefault("REDIS_ADDR", "")
	if addr == "" {
		return NewMemoCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.GetEnvOrDefault("REDIS_PASS", ""),
		DB:       config.GetEnvIntOrDefault("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis at %s unreachable (%v); using in-process cache", addr, err)
		return NewMemoCache()
	}
	return &redisCache{client: client}
}

type redisCache struct {
	client *redis.Client
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, "assets:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, "assets:"+key, val, ttl).Err(); err != nil {
		log.Printf("⚠️  Failed to cache %s: %v", key, err)
	}
}

// MemoCache is the load-once memo map used when Redis is absent. Entries
// expire lazily on read.
type MemoCache struct {
	mu      sync.RWMutex
	entries map[string]memoEntry
}

type memoEntry struct {
	val     []byte
	expires time.Time
}

// NewMemoCache creates an empty in-process cache.
func NewMemoCache() *MemoCache {
	return &MemoCache{entries: make(map[string]memoEntry)}
}

func (c *MemoCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.val, true
}

func (c *MemoCache) Set(_ context.Context, key string, val []byte, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = memoEntry{val: val, expires: time.Now().Add(ttl)}
	c.mu.Unlock()
}
