package recur

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"
)

// cacheEntry is one memoized expansion result.
type cacheEntry struct {
	dates      []Date
	expiresAt  time.Time
	accessedAt time.Time
}

// ExpansionCache memoizes expansion results keyed on the full spec, so a
// re-render that did not touch the spec gets its sequence back without
// recomputation. Correctness never depends on the cache: expansion is a
// pure function of the spec, the cache only avoids redundant work.
type ExpansionCache struct {
	entries         map[string]*cacheEntry
	mutex           sync.RWMutex
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

// CacheConfig holds configuration for the expansion cache.
type CacheConfig struct {
	TTL             time.Duration // How long entries stay valid
	MaxEntries      int           // Maximum number of entries before cleanup
	CleanupInterval time.Duration // How often to run cleanup
}

// DefaultCacheConfig provides sensible defaults for memoized expansion.
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      1000,
	CleanupInterval: 5 * time.Minute,
}

// NewExpansionCache creates a new expansion cache with the given
// configuration.
func NewExpansionCache(config CacheConfig) *ExpansionCache {
	if config.TTL <= 0 {
		config.TTL = DefaultCacheConfig.TTL
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultCacheConfig.MaxEntries
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = DefaultCacheConfig.CleanupInterval
	}

	cache := &ExpansionCache{
		entries:         make(map[string]*cacheEntry),
		ttl:             config.TTL,
		maxEntries:      config.MaxEntries,
		cleanupInterval: config.CleanupInterval,
		stopCleanup:     make(chan struct{}),
	}

	go cache.cleanupLoop()

	return cache
}

// fingerprint hashes every field of the spec into a cache key. Weekdays are
// sorted first so the filter stays order-insensitive.
func fingerprint(spec Spec) string {
	hasher := sha256.New()

	hasher.Write([]byte(spec.Frequency))
	hasher.Write([]byte{'|'})
	hasher.Write([]byte(strconv.Itoa(spec.Interval)))
	hasher.Write([]byte{'|'})

	days := append([]time.Weekday(nil), spec.DaysOfWeek...)
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	for _, d := range days {
		hasher.Write([]byte{byte(d)})
	}
	hasher.Write([]byte{'|'})

	hasher.Write([]byte(spec.Monthly.Week))
	hasher.Write([]byte{byte(spec.Monthly.Day), '|'})

	hasher.Write([]byte(spec.Start.String()))
	hasher.Write([]byte{'|'})
	hasher.Write([]byte(spec.End.String()))
	if spec.EndEnabled {
		hasher.Write([]byte{1})
	}

	return fmt.Sprintf("%x", hasher.Sum(nil))
}

// Get retrieves a memoized sequence if it exists and hasn't expired. The
// returned slice is a copy; callers may mutate it freely.
func (c *ExpansionCache) Get(spec Spec) ([]Date, bool) {
	key := fingerprint(spec)

	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, false
	}

	now := time.Now()
	if now.After(entry.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		return nil, false
	}

	c.mutex.Lock()
	entry.accessedAt = now
	dates := append([]Date(nil), entry.dates...)
	c.mutex.Unlock()

	return dates, true
}

// Set stores a sequence in the cache.
func (c *ExpansionCache) Set(spec Spec, dates []Date) {
	key := fingerprint(spec)
	now := time.Now()

	entry := &cacheEntry{
		dates:      append([]Date(nil), dates...),
		expiresAt:  now.Add(c.ttl),
		accessedAt: now,
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = entry

	if len(c.entries) > c.maxEntries {
		c.cleanup()
	}
}

// cleanup removes expired entries and the least recently accessed entries if
// still over the limit. Callers must hold the write lock.
func (c *ExpansionCache) cleanup() {
	now := time.Now()

	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	if len(c.entries) > c.maxEntries {
		type keyAccess struct {
			key        string
			accessedAt time.Time
		}

		keyAccessList := make([]keyAccess, 0, len(c.entries))
		for key, entry := range c.entries {
			keyAccessList = append(keyAccessList, keyAccess{
				key:        key,
				accessedAt: entry.accessedAt,
			})
		}
		sort.Slice(keyAccessList, func(i, j int) bool {
			return keyAccessList[i].accessedAt.Before(keyAccessList[j].accessedAt)
		})

		entriesToRemove := len(c.entries) - c.maxEntries
		for i := 0; i < entriesToRemove && i < len(keyAccessList); i++ {
			delete(c.entries, keyAccessList[i].key)
		}
	}
}

// cleanupLoop runs periodic cleanup.
func (c *ExpansionCache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			c.cleanup()
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine and clears the cache.
func (c *ExpansionCache) Close() {
	close(c.stopCleanup)
	c.mutex.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mutex.Unlock()
}

// Stats returns cache statistics.
func (c *ExpansionCache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entryCount := len(c.entries)
	expiredCount := 0
	now := time.Now()

	for _, entry := range c.entries {
		if now.After(entry.expiresAt) {
			expiredCount++
		}
	}

	return CacheStats{
		TotalEntries:   entryCount,
		ExpiredEntries: expiredCount,
		ActiveEntries:  entryCount - expiredCount,
	}
}

// CacheStats provides information about cache occupancy.
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
}
