package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardStatsKeyFmt = "invoice:stats:%d"
	dashboardStatsTTL    = 5 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: when the
// ping fails the client stays nil and every lookup is a miss.
func Init(addr, password string) error {
	if addr == "" {
		addr = "localhost:6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Enabled reports whether a Redis connection is available.
func Enabled() bool {
	return client != nil
}

func statsKey(ownerID int64) string {
	return fmt.Sprintf(dashboardStatsKeyFmt, ownerID)
}

// GetDashboardStats returns the cached stats payload for an owner, if any.
func GetDashboardStats(ctx context.Context, ownerID int64, dest interface{}) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, statsKey(ownerID)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetDashboardStats caches the stats payload for an owner.
func SetDashboardStats(ctx context.Context, ownerID int64, stats interface{}) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	client.Set(ctx, statsKey(ownerID), raw, dashboardStatsTTL)
}

// InvalidateDashboardStats drops the cached stats after any invoice write.
func InvalidateDashboardStats(ctx context.Context, ownerID int64) {
	if client == nil {
		return
	}
	client.Del(ctx, statsKey(ownerID))
}
