package catalog

import (
	"context"
	"sync"
	"time"
)

// Cache 업스트림 응답 본문을 재검증 주기 동안 보관하는 캐시입니다.
type Cache interface {
	// Get 항목이 없거나 만료되었으면 ErrCacheMiss를 반환합니다.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Sweeper 만료된 항목을 주기적으로 정리해야 하는 캐시가 구현합니다.
type Sweeper interface {
	// Sweep 만료된 항목을 제거하고 제거한 개수를 반환합니다.
	Sweep() int
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache 프로세스 메모리 캐시. 만료된 항목은 조회 시 무시되고, Sweep 호출 시 제거됩니다.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	now func() time.Time
}

var (
	_ Cache   = (*MemoryCache)(nil)
	_ Sweeper = (*MemoryCache)(nil)
)

// NewMemoryCache 새로운 MemoryCache를 생성합니다.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(e.expiresAt) {
		return nil, ErrCacheMiss
	}

	return e.value, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

func (c *MemoryCache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	var removed int
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len 만료 여부와 관계없이 보관 중인 항목의 개수
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
