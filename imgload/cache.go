package imgload

import (
	"image"
	"sync"

	"github.com/golang/groupcache/lru"
)

// Cache maps source identifiers to decoded images.
//
// Implementations must be safe for concurrent use. Eviction is internal to
// the cache: a Get after Set is best-effort.
type Cache interface {
	Get(key string) (image.Image, bool)
	Set(key string, img image.Image)
}

// DefaultBudget bounds a MemoryCache when no budget is given.
const DefaultBudget = 64 << 20

// MemoryCache keeps decoded images in memory, evicting the least recently
// used ones once their estimated footprint exceeds the byte budget. There is
// no bound on the number of entries.
type MemoryCache struct {
	mu      sync.Mutex
	budget  int64
	bytes   int64
	entries *lru.Cache
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache returns a cache bounded to budget bytes of decoded pixels.
// A budget <= 0 selects DefaultBudget.
func NewMemoryCache(budget int64) *MemoryCache {
	if budget <= 0 {
		budget = DefaultBudget
	}
	c := &MemoryCache{
		budget:  budget,
		entries: lru.New(0),
	}
	c.entries.OnEvicted = func(_ lru.Key, v interface{}) {
		c.bytes -= footprint(v.(image.Image))
	}
	return c
}

// Get returns the image cached under key, marking it recently used.
func (c *MemoryCache) Get(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	return v.(image.Image), true
}

// Set caches img under key, replacing any previous entry. Nil images are
// ignored. The newest entry is always retained, even if it alone exceeds the
// budget.
func (c *MemoryCache) Set(key string, img image.Image) {
	if img == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Remove(key)
	c.entries.Add(key, img)
	c.bytes += footprint(img)
	for c.bytes > c.budget && c.entries.Len() > 1 {
		c.entries.RemoveOldest()
	}
}

// Len reports the number of cached images.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Bytes reports the estimated footprint of the cached images.
func (c *MemoryCache) Bytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// footprint estimates the decoded size of img at four bytes per pixel.
func footprint(img image.Image) int64 {
	b := img.Bounds()
	return int64(b.Dx()) * int64(b.Dy()) * 4
}
