package database

import (
	"context"
	"log"
	"time"

	"acelerador/config"
	"acelerador/sessions"

	"github.com/redis/go-redis/v9"
)

var REDIS *redis.Client

// InitRedis connects the session cache and wires the default session store.
// When redis is unreachable the store runs on its in-memory tier alone, so
// logins keep working across a cache outage (but not across a restart).
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := REDIS.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable, sessions fall back to in-memory tier only: %v", err)
		sessions.Default = sessions.NewStore(nil, sessions.NewMemoryTier())
		return
	}

	sessions.Default = sessions.NewStore(sessions.NewRedisTier(REDIS), sessions.NewMemoryTier())
}
