// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest liveness snapshot of the datastores the
// API depends on. Served verbatim by /health.
type HealthStatus struct {
	Mongo      bool      `json:"mongo"`
	RedisCache bool      `json:"redisCache"`
	RedisAuth  bool      `json:"redisAuth"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the most recent snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings Mongo and both Redis clients once a minute
// and stores the result for /health to serve.
func StartHealthMonitor(cache, auth *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			snapshot := HealthStatus{
				Mongo:      mongoClient.Ping(ctx, nil) == nil,
				RedisCache: cache.Ping(ctx).Err() == nil,
				RedisAuth:  auth.Ping(ctx).Err() == nil,
				CheckedAt:  time.Now(),
			}
			cancel()

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
