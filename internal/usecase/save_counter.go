package usecase

import "sync"

// SaveCounter tracks per-product heart counts for one overlay session.
// Counts start at the seed value (or 0) and only ever go up.
type SaveCounter struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewSaveCounter copies seeds; later changes to the map do not leak in.
func NewSaveCounter(seeds map[string]int) *SaveCounter {
	counts := make(map[string]int, len(seeds))
	for k, v := range seeds {
		if v < 0 {
			v = 0
		}
		counts[k] = v
	}
	return &SaveCounter{counts: counts}
}

func (c *SaveCounter) IncrementSave(productKey string) int {
	return c.IncrementSaveFrom(productKey, 0)
}

// IncrementSaveFrom is IncrementSave for a key whose untracked starting
// value is base rather than 0. base is ignored once the key is tracked.
func (c *SaveCounter) IncrementSaveFrom(productKey string, base int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.counts[productKey]
	if !ok && base > 0 {
		n = base
	}
	n++
	c.counts[productKey] = n
	return n
}

// Count reports the current value and whether the key is seeded or was saved.
func (c *SaveCounter) Count(productKey string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n, ok := c.counts[productKey]
	return n, ok
}

func (c *SaveCounter) Snapshot() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
