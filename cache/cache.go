// Package cache memoizes generated product details for the process
// lifetime. The cache is an explicit object constructed at startup and
// handed to the handler that needs it, so tests get a fresh cache each.
package cache

import (
	"sync"

	"github.com/benjaminfth/krishinew/models"
)

// DetailsCache maps static catalog ids to generated detail records.
// Entries are never evicted or regenerated. Misses for the same id are
// serialized by a per-key lock so only one upstream call runs per id;
// other ids are never blocked.
type DetailsCache struct {
	mu      sync.Mutex
	entries map[int]models.ProductDetails
	locks   map[int]*sync.Mutex
}

func NewDetailsCache() *DetailsCache {
	return &DetailsCache{
		entries: make(map[int]models.ProductDetails),
		locks:   make(map[int]*sync.Mutex),
	}
}

// Get returns the cached entry for id, if present.
func (c *DetailsCache) Get(id int) (models.ProductDetails, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.entries[id]
	return d, ok
}

// Do returns the cached entry for id, calling fill at most once per id at
// a time to produce it on a miss. A fill error is returned to the caller
// and nothing is cached, so the next request retries.
func (c *DetailsCache) Do(id int, fill func() (models.ProductDetails, error)) (models.ProductDetails, error) {
	lock := c.keyLock(id)
	lock.Lock()
	defer lock.Unlock()

	if d, ok := c.Get(id); ok {
		return d, nil
	}

	d, err := fill()
	if err != nil {
		return models.ProductDetails{}, err
	}

	c.mu.Lock()
	c.entries[id] = d
	c.mu.Unlock()
	return d, nil
}

func (c *DetailsCache) keyLock(id int) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[id] = lock
	}
	return lock
}
