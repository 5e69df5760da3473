package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const statsKey = "stats:overview"

// StatsTTL is how long the cached dashboard statistics stay fresh
const StatsTTL = 60 * time.Second

// InitRedis connects to Redis when REDIS_ADDR is set. The cache is
// optional; without it every stats request hits the database.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		fmt.Println("REDIS_ADDR not set, stats caching disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// GetCachedStats returns the cached stats payload, if any
func GetCachedStats() ([]byte, bool) {
	if Client == nil {
		return nil, false
	}
	payload, err := Client.Get(Ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// CacheStats stores the stats payload for StatsTTL
func CacheStats(payload []byte) error {
	if Client == nil {
		return nil
	}
	return Client.Set(Ctx, statsKey, payload, StatsTTL).Err()
}
