// Package cache provides the short-lived response cache used by the list
// views (index, group, follow feed). It is a performance optimization only;
// callers must behave correctly when it is absent or stale.
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ResponseCache stores rendered response payloads under string keys with a
// fixed time-to-live.
type ResponseCache struct {
	store *gocache.Cache
}

// New creates a cache whose entries expire after ttl.
func New(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Get returns the cached payload for key, if present and not expired.
func (c *ResponseCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

// Set stores a payload under key with the cache's default TTL.
func (c *ResponseCache) Set(key string, value interface{}) {
	c.store.SetDefault(key, value)
}

// Key builds a cache key from a view name and its distinguishing parts
// (query parameters, viewer identity).
func Key(view string, parts ...interface{}) string {
	key := view
	for _, p := range parts {
		key += fmt.Sprintf("|%v", p)
	}
	return key
}
