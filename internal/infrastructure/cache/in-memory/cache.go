package cache

import (
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/credstore/internal/core/ports"
)

// Cache is a volatile cache whose entries expire after the configured TTL.
// A zero TTL means entries never expire.
type Cache struct {
	cache *ttlcache.Cache[string, interface{}]

	log func(format string, a ...interface{})
}

// NewCache returns a cache and starts the routine that periodically evicts
// the expired entries. Stop must be called to release it.
func NewCache(ttl time.Duration) *Cache {
	c := ttlcache.New[string, interface{}](
		ttlcache.WithTTL[string, interface{}](ttl),
	)
	go c.Start()

	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("cache: %s", format)
		log.Debugf(format, a...)
	}
	return &Cache{c, logFn}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	item := c.cache.Get(key)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

func (c *Cache) Set(key string, value interface{}) {
	c.cache.Set(key, value, ttlcache.DefaultTTL)
}

func (c *Cache) Clear() {
	c.cache.DeleteAll()
	c.log("cleared")
}

// Len returns the number of entries not yet evicted.
func (c *Cache) Len() int {
	return c.cache.Len()
}

func (c *Cache) Stop() {
	c.cache.Stop()
}

var _ ports.Cache = (*Cache)(nil)
