// Package cache is a thin read-through cache for the public content
// endpoints. The database stays authoritative: every value carries a TTL and
// admin writes invalidate the affected keys, so a cache miss or a dropped
// redis connection only costs a query.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	KeyServices        = "cache:services"
	KeyServicesVersion = "cache:services:version"
	KeySiteConfig      = "cache:config"
	KeySuccessCases    = "cache:success-cases"
	KeyAboutCards      = "cache:about-cards"
)

const DefaultTTL = 5 * time.Minute

type Cache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func New(client *redis.Client) *Cache {
	return &Cache{Redis: client, TTL: DefaultTTL}
}

// Get returns the cached payload for key, or false on miss or error. A nil
// receiver or nil client degrades to a permanent miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.Redis == nil {
		return nil, false
	}
	val, err := c.Redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get %s: %v", key, err)
		}
		return nil, false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.Redis == nil {
		return
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := c.Redis.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.Redis == nil || len(keys) == 0 {
		return
	}
	if err := c.Redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache: invalidate %v: %v", keys, err)
	}
}
