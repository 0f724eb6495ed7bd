package mock

import (
	"context"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var redisServer *miniredis.Miniredis

// NewRedis returns a client connected to a process-wide miniredis.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		redisConn = openRedisConn()
	})

	return redisConn
}

func openRedisConn() *redis.Client {
	var err error
	redisServer, err = miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(
		&redis.Options{
			Addr: redisServer.Addr(),
		},
	)
}

// RedisKeys lists the keys matching pattern.
func RedisKeys(pattern string) ([]string, error) {
	return NewRedis().Keys(context.Background(), pattern).Result()
}

// RedisTTL returns the remaining time to live of key.
func RedisTTL(key string) time.Duration {
	NewRedis()
	return redisServer.TTL(key)
}

func ClearRedis(redis *redis.Client) error {
	return redis.FlushAll(context.TODO()).Err()
}
