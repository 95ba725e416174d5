package recur

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestExpansionCache_BasicOperations(t *testing.T) {
	cache := NewExpansionCache(CacheConfig{
		TTL:             5 * time.Minute,
		MaxEntries:      100,
		CleanupInterval: 1 * time.Minute,
	})
	defer cache.Close()

	spec := Spec{
		Frequency:  Daily,
		Interval:   1,
		Start:      day("2024-01-01"),
		End:        day("2024-01-05"),
		EndEnabled: true,
	}

	// Cache miss first
	result, found := cache.Get(spec)
	if found {
		t.Error("Expected cache miss, got hit")
	}
	if result != nil {
		t.Error("Expected nil result on cache miss")
	}

	dates := []Date{day("2024-01-01"), day("2024-01-02")}
	cache.Set(spec, dates)

	result, found = cache.Get(spec)
	if !found {
		t.Error("Expected cache hit, got miss")
	}
	if len(result) != 2 || result[0].String() != "2024-01-01" {
		t.Errorf("Unexpected cached result: %v", result)
	}
}

func TestExpansionCache_TTLExpiration(t *testing.T) {
	cache := NewExpansionCache(CacheConfig{
		TTL:             100 * time.Millisecond, // Very short TTL for testing
		MaxEntries:      100,
		CleanupInterval: 50 * time.Millisecond,
	})
	defer cache.Close()

	spec := Spec{Frequency: Daily, Interval: 1, Start: day("2024-01-01")}
	cache.Set(spec, []Date{day("2024-01-01")})

	if _, found := cache.Get(spec); !found {
		t.Error("Expected cache hit immediately after set")
	}

	time.Sleep(150 * time.Millisecond)

	if _, found := cache.Get(spec); found {
		t.Error("Expected cache miss after TTL expiration")
	}
}

func TestExpansionCache_DifferentSpecsDifferentKeys(t *testing.T) {
	cache := NewExpansionCache(DefaultCacheConfig)
	defer cache.Close()

	base := Spec{Frequency: Daily, Interval: 1, Start: day("2024-01-01")}
	cache.Set(base, []Date{day("2024-01-01")})

	variants := []Spec{
		{Frequency: Weekly, Interval: 1, Start: day("2024-01-01")},
		{Frequency: Daily, Interval: 2, Start: day("2024-01-01")},
		{Frequency: Daily, Interval: 1, Start: day("2024-01-02")},
		{Frequency: Daily, Interval: 1, Start: day("2024-01-01"), End: day("2024-02-01"), EndEnabled: true},
	}
	for i, v := range variants {
		if _, found := cache.Get(v); found {
			t.Errorf("Variant %d unexpectedly shares a cache key with the base spec", i)
		}
	}

	if _, found := cache.Get(base); !found {
		t.Error("Base spec entry should still be cached")
	}
}

func TestExpansionCache_WeekdayOrderInsensitiveKey(t *testing.T) {
	cache := NewExpansionCache(DefaultCacheConfig)
	defer cache.Close()

	a := Spec{Frequency: Weekly, Interval: 1, DaysOfWeek: []time.Weekday{time.Monday, time.Friday}, Start: day("2024-01-01")}
	b := Spec{Frequency: Weekly, Interval: 1, DaysOfWeek: []time.Weekday{time.Friday, time.Monday}, Start: day("2024-01-01")}

	cache.Set(a, []Date{day("2024-01-01")})
	if _, found := cache.Get(b); !found {
		t.Error("Weekday order should not change the cache key")
	}
}

func TestExpansionCache_EvictsOverLimit(t *testing.T) {
	cache := NewExpansionCache(CacheConfig{
		TTL:             5 * time.Minute,
		MaxEntries:      10,
		CleanupInterval: 1 * time.Minute,
	})
	defer cache.Close()

	for i := 0; i < 25; i++ {
		spec := Spec{
			Frequency: Daily,
			Interval:  i + 1,
			Start:     day("2024-01-01"),
		}
		cache.Set(spec, []Date{day(fmt.Sprintf("2024-01-%02d", i%28+1))})
	}

	stats := cache.Stats()
	if stats.TotalEntries > 10 {
		t.Errorf("Expected at most 10 entries after eviction, got %d", stats.TotalEntries)
	}
}

func TestExpansionCache_ConcurrentAccess(t *testing.T) {
	cache := NewExpansionCache(DefaultCacheConfig)
	defer cache.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			spec := Spec{Frequency: Daily, Interval: n + 1, Start: day("2024-01-01")}
			cache.Set(spec, []Date{day("2024-01-01")})
			cache.Get(spec)
		}(i)
	}
	wg.Wait()
}
