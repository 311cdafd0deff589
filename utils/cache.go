// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/alimp01/hural-bot/config"
)

// SelectionCacheClient is the dedicated client for pending-selection storage.
var SelectionCacheClient *redis.Client

// InitSelectionCache initializes the Redis client used for pending slot
// selections (using the DB from AppConfig).
func InitSelectionCache() {
	SelectionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSelectionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SelectionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Selection Cache): %v", err)
	}
}

// GetSelectionCacheClient returns the selection cache client.
func GetSelectionCacheClient() *redis.Client {
	if SelectionCacheClient == nil {
		InitSelectionCache()
	}
	return SelectionCacheClient
}
