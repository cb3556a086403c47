package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Cache is a thread-safe key-value store with optional TTL and tag
// invalidation. Instances are constructed and injected; there is no
// package-level singleton.
type Cache struct {
	m        sync.Map
	tagIndex sync.Map // map[string]*sync.Map (key set per tag)
}

func New() *Cache {
	return &Cache{}
}

type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix nanoseconds; 0 means no expiration
}

// Set stores a value with an optional TTL and optional tags. ttl <= 0 means
// no expiration.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

// Get returns (value, true) if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.m.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
}

// DeleteByTag deletes every entry carrying a tag.
func (c *Cache) DeleteByTag(tag string) {
	val, ok := c.tagIndex.Load(tag)
	if !ok {
		return
	}
	km := val.(*sync.Map)
	km.Range(func(key, _ interface{}) bool {
		c.m.Delete(key)
		km.Delete(key)
		return true
	})
	c.tagIndex.Delete(tag)
}

// Key builds a composite cache key from parts.
func Key(parts ...interface{}) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(strs, "|")
}
