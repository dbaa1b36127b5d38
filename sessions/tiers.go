package sessions

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTier is the durable tier backed by the shared redis client
type RedisTier struct {
	client *redis.Client
}

func NewRedisTier(client *redis.Client) *RedisTier {
	return &RedisTier{client: client}
}

func (t *RedisTier) Get(ctx context.Context, key string) (string, bool) {
	value, err := t.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("Redis session read failed: %v", err)
		return "", false
	}
	return value, true
}

func (t *RedisTier) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := t.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Redis session write failed: %v", err)
	}
}

func (t *RedisTier) Del(ctx context.Context, key string) {
	if err := t.client.Del(ctx, key).Err(); err != nil {
		log.Printf("Redis session delete failed: %v", err)
	}
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryTier is the in-process fallback tier. Entries expire lazily on read.
type MemoryTier struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryTier() *MemoryTier {
	return &MemoryTier{entries: make(map[string]memoryEntry)}
}

func (t *MemoryTier) Get(_ context.Context, key string) (string, bool) {
	t.mu.RLock()
	entry, ok := t.entries[key]
	t.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		t.mu.Lock()
		delete(t.entries, key)
		t.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (t *MemoryTier) Set(_ context.Context, key, value string, ttl time.Duration) {
	t.mu.Lock()
	t.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	t.mu.Unlock()
}

func (t *MemoryTier) Del(_ context.Context, key string) {
	t.mu.Lock()
	delete(t.entries, key)
	t.mu.Unlock()
}
