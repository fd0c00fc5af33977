package tiles

import (
	"image"
	"sync"
)

// Cache keeps rendered bitmaps by key and layout. It is safe for concurrent
// use.
type Cache struct {
	r *Renderer

	mu    sync.Mutex
	items map[cacheKey]*Bitmap
}

type cacheKey struct {
	Key
	layout Layout
}

// NewCache returns an empty cache that renders with r.
func NewCache(r *Renderer) *Cache {
	if r == nil {
		r = NewRenderer(nil)
	}
	return &Cache{r: r, items: make(map[cacheKey]*Bitmap)}
}

// Get returns the cached bitmap for key, rendering it on a miss. Failed
// renders are not cached.
func (c *Cache) Get(src image.Image, key Key, l Layout) *Bitmap {
	c.mu.Lock()
	defer c.mu.Unlock()

	ck := cacheKey{key, l}
	if b, ok := c.items[ck]; ok {
		return b
	}
	b := c.r.Render(src, key, l)
	if b != nil {
		c.items[ck] = b
	}
	return b
}

// Len returns the number of cached bitmaps.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Invalidate drops every cached bitmap, e.g. after a viewport resize.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
}
