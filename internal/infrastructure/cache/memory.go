package cache

import (
	"context"
	"sync"
	"time"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

// MemoryProfileCache is the in-process fallback used when no Redis address
// is configured. Entries are evicted lazily on access.
type MemoryProfileCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	sess    domain.Session
	expires time.Time
}

// NewMemoryProfileCache creates an empty in-process cache.
func NewMemoryProfileCache() *MemoryProfileCache {
	return &MemoryProfileCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryProfileCache) Get(_ context.Context, token string) (*domain.Session, bool) {
	c.mu.RLock()
	e, ok := c.entries[token]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expires) {
		c.mu.Lock()
		delete(c.entries, token)
		c.mu.Unlock()
		return nil, false
	}
	sess := e.sess
	sess.Token = token
	return &sess, true
}

func (c *MemoryProfileCache) Set(_ context.Context, token string, sess *domain.Session, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	stored := *sess
	stored.Token = ""
	c.mu.Lock()
	c.entries[token] = memoryEntry{sess: stored, expires: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *MemoryProfileCache) Delete(_ context.Context, token string) {
	c.mu.Lock()
	delete(c.entries, token)
	c.mu.Unlock()
}
