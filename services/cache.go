package services

import (
	"fmt"
	"sync"
	"time"
)

// CacheItem Generic container
type CacheItem struct {
	Data     any
	StoredAt time.Time
	TTL      time.Duration
}

// CacheService is the process-wide response cache. One key per distinct
// date plus one per distinct game id, so unbounded growth is not a concern
// in practice.
type CacheService struct {
	// keys: "scoreboard_today", "scoreboard_<date>", "boxscore_<gameId>"
	store sync.Map // map[string]*CacheItem
}

func NewCacheService() *CacheService {
	return &CacheService{}
}

// CacheKey builds "{category}_{identifier}"; the category prefix keeps
// scoreboard and boxscore keys from colliding.
func CacheKey(category, identifier string) string {
	return fmt.Sprintf("%s_%s", category, identifier)
}

func (cs *CacheService) Set(key string, data any, ttl time.Duration) {
	item := &CacheItem{
		Data:     data,
		StoredAt: time.Now(),
		TTL:      ttl,
	}
	cs.store.Store(key, item)
}

// Get returns the cached value if it is still within its TTL. An expired
// entry is purged before reporting a miss, so the next Set starts fresh.
func (cs *CacheService) Get(key string) (any, bool) {
	val, ok := cs.store.Load(key)
	if !ok {
		return nil, false
	}

	item := val.(*CacheItem)
	if time.Since(item.StoredAt) >= item.TTL {
		cs.store.Delete(key)
		return nil, false
	}

	return item.Data, true
}

// Contains reports whether a key is present at all, expired or not.
// Used by tests to verify the expired-read purge.
func (cs *CacheService) Contains(key string) bool {
	_, ok := cs.store.Load(key)
	return ok
}
