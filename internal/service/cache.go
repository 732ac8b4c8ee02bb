// Package service contains the joint design business logic.
package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/boltjoint-service/internal/domain/model"
	"github.com/guttosm/boltjoint-service/internal/metrics"
	"github.com/guttosm/boltjoint-service/internal/service/cache"
)

const defaultShards = 16

// ShardedCache spreads entries over power-of-two shards, each with its own lock.
// Keys are already uniformly distributed hashes so the low bits pick the shard.
type ShardedCache struct {
	shards []*ttlCache
	mask   uint64
}

// NewShardedCache creates a sharded cache holding about capacity entries in
// total. numShards is rounded up to a power of two.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = defaultShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	sc := &ShardedCache{
		shards: make([]*ttlCache, n),
		mask:   uint64(n - 1),
	}
	for i := range sc.shards {
		sc.shards[i] = newTTLCache(perShard, ttl)
	}
	return sc
}

func (sc *ShardedCache) shard(key uint64) *ttlCache {
	return sc.shards[key&sc.mask]
}

// Get retrieves a value from the owning shard.
func (sc *ShardedCache) Get(key uint64) (model.DesignResult, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a value in the owning shard.
func (sc *ShardedCache) Set(key uint64, value model.DesignResult) {
	sc.shard(key).Set(key, value)
}

// Invalidate removes a key from the owning shard.
func (sc *ShardedCache) Invalidate(key uint64) {
	sc.shard(key).Invalidate(key)
}

// Clear empties every shard.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop shuts down the cleanup goroutine of every shard.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics sums the metrics of all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is an LRU cache whose entries also expire after ttl.
// It implements cache.CacheWithMetrics.
type ttlCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[uint64]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	stopOnce  sync.Once
	stopCh    chan struct{}
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type cacheEntry struct {
	key       uint64
	value     model.DesignResult
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[uint64]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.janitor(cleanupInterval(ttl))
	return c
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > time.Minute {
		return time.Minute
	}
	return ttl
}

// Stop terminates the background cleanup. Safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current hit, miss and eviction counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

// Get returns the cached value when present and not expired.
func (c *ttlCache) Get(key uint64) (model.DesignResult, bool) {
	c.mu.Lock()
	entry, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.DesignResult{}, false
	}
	if time.Now().After(entry.expiresAt) {
		c.unlink(entry)
		delete(c.items, key)
		c.mu.Unlock()
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return model.DesignResult{}, false
	}
	c.moveToFront(entry)
	value := entry.value
	c.mu.Unlock()

	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return value, true
}

// Set inserts or refreshes a value, evicting the least recently used entry
// once capacity is exceeded.
func (c *ttlCache) Set(key uint64, value model.DesignResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = entry
	c.pushFront(entry)

	if len(c.items) > c.capacity {
		lru := c.tail
		c.unlink(lru)
		delete(c.items, lru.key)
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes a single key.
func (c *ttlCache) Invalidate(key uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.unlink(entry)
		delete(c.items, key)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear drops every entry and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	c.items = make(map[uint64]*cacheEntry, c.capacity)
	c.head, c.tail = nil, nil
	c.mu.Unlock()

	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	metrics.RecordCacheOperation("clear", "success")
}

func (c *ttlCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.purgeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) purgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.unlink(entry)
			delete(c.items, key)
		}
	}
}

func (c *ttlCache) moveToFront(entry *cacheEntry) {
	if c.head == entry {
		return
	}
	c.unlink(entry)
	c.pushFront(entry)
}

func (c *ttlCache) pushFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache) unlink(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}
