package plasma

import "sync"

// MapCache shares generated height maps between sessions that use the same
// map size. The maps are read-only, so handing out the same pointer is safe.
type MapCache struct {
	mu   sync.Mutex
	maps map[int]*HeightMaps
}

// NewMapCache returns an empty cache.
func NewMapCache() *MapCache {
	return &MapCache{maps: make(map[int]*HeightMaps)}
}

// Get returns the maps for mapSize, generating them on first use.
func (c *MapCache) Get(mapSize int) *HeightMaps {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.maps[mapSize]; ok {
		return m
	}
	m := Generate(mapSize)
	c.maps[mapSize] = m
	return m
}

// Len reports how many map sizes are cached.
func (c *MapCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.maps)
}
