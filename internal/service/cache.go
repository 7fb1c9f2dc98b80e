package service

import (
	"container/list"
	"sync"
	"time"

	"github.com/guttosm/boxpack-service/internal/domain/model"
	"github.com/guttosm/boxpack-service/internal/metrics"
	"github.com/guttosm/boxpack-service/internal/service/cache"
)

// ttlCache is a thread-safe LRU cache with per-entry TTL expiry for packing
// results. Expired entries are reaped by a background goroutine; Stop shuts
// it down.
type ttlCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	entries   map[string]*list.Element
	order     *list.List
	stopCh    chan struct{}
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry struct {
	key       string
	value     *model.PackingResult
	expiresAt time.Time
}

// newTTLCache creates a cache holding at most capacity results for at most
// ttl each.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get returns the cached result for key when present and unexpired.
func (c *ttlCache) Get(key string) (*model.PackingResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.entries[key]
	if !ok {
		c.misses++
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}

	entry := element.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeElement(element)
		c.misses++
		metrics.RecordCacheOperation("get", "expired")
		return nil, false
	}

	c.order.MoveToFront(element)
	c.hits++
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores a result, evicting the least recently used entry when full.
func (c *ttlCache) Set(key string, value *model.PackingResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.entries[key]; ok {
		entry := element.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.order.MoveToFront(element)
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
			c.evictions++
			metrics.RecordCacheOperation("set", "evicted")
		}
	}

	entry := &cacheEntry{key: key, value: value, expiresAt: time.Now().Add(c.ttl)}
	c.entries[key] = c.order.PushFront(entry)
	metrics.UpdateCacheMetrics(len(c.entries), c.capacity)
}

// Invalidate removes a single key.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if element, ok := c.entries[key]; ok {
		c.removeElement(element)
	}
}

// Clear removes every entry.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element, c.capacity)
	c.order.Init()
	metrics.UpdateCacheMetrics(0, c.capacity)
}

// Stop terminates the background cleanup goroutine.
func (c *ttlCache) Stop() {
	close(c.stopCh)
}

// Metrics returns current cache counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cache.Metrics{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.entries),
		Capacity:  c.capacity,
	}
}

// removeElement deletes an entry; callers hold the lock.
func (c *ttlCache) removeElement(element *list.Element) {
	entry := element.Value.(*cacheEntry)
	delete(c.entries, entry.key)
	c.order.Remove(element)
}

// cleanupLoop periodically drops expired entries so idle caches do not pin
// memory until the next read.
func (c *ttlCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for element := c.order.Back(); element != nil; {
		prev := element.Prev()
		if entry := element.Value.(*cacheEntry); now.After(entry.expiresAt) {
			c.removeElement(element)
		}
		element = prev
	}
	metrics.UpdateCacheMetrics(len(c.entries), c.capacity)
}
