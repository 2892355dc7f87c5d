package icon

import "fmt"

const defaultMaxCacheSize = 256

// Cache holds converted bitmaps keyed by source path and icon index, so
// repeated scans and tab switches do not re-pay extraction cost.
//
// The cache is the exclusive owner of every bitmap it holds: a stored
// bitmap belongs to exactly one entry, eviction and Clear drop it
// wholesale, and no entry ever aliases another's bitmap.
type Cache struct {
	bitmaps map[string]*Bitmap
	order   []string // insertion order for LRU eviction
	maxSize int
}

// Key builds the cache key for a source path and icon index.
func Key(path string, index int) string {
	return fmt.Sprintf("%s:%d", path, index)
}

// NewCache creates a Cache with the default capacity.
func NewCache() *Cache {
	return NewCacheWithSize(defaultMaxCacheSize)
}

// NewCacheWithSize creates a Cache evicting least-recently-used entries
// beyond maxSize.
func NewCacheWithSize(maxSize int) *Cache {
	return &Cache{
		bitmaps: make(map[string]*Bitmap),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Get returns the cached bitmap for key, or nil.
func (c *Cache) Get(key string) *Bitmap {
	if b, exists := c.bitmaps[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return b
	}
	return nil
}

// Set stores a bitmap under key, taking ownership. Replacing an existing
// entry discards the previous bitmap.
func (c *Cache) Set(key string, b *Bitmap) {
	if _, exists := c.bitmaps[key]; exists {
		c.bitmaps[key] = b
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.bitmaps[key] = b
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.bitmaps)
}

func (c *Cache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *Cache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.bitmaps, oldest)
}

// Clear releases every cached bitmap.
func (c *Cache) Clear() {
	c.bitmaps = make(map[string]*Bitmap)
	c.order = c.order[:0]
}
