package font

import (
	"hash/fnv"
	"math"
	"sync"
)

// shardCount is the number of cache shards. Must be a power of 2 so a
// shard can be selected with a bitwise AND.
const shardCount = 16

const shardMask = shardCount - 1

// widthKey identifies a memoized width by family and exact size.
type widthKey struct {
	// family is the FNV-1a hash of the family string.
	family uint64

	// sizeBits is the IEEE 754 bit pattern of the size. Using the bit
	// pattern keys floats exactly, with no epsilon comparisons.
	sizeBits uint64
}

func newWidthKey(family string, size float64) widthKey {
	h := fnv.New64a()
	h.Write([]byte(family))
	return widthKey{
		family:   h.Sum64(),
		sizeBits: math.Float64bits(size),
	}
}

// widthCache memoizes average character widths. Shards reduce lock
// contention when many documents are laid out concurrently; recomputing
// a key in a race is harmless because the value is a pure function of
// the key.
type widthCache struct {
	shards [shardCount]cacheShard
}

type cacheShard struct {
	mu      sync.RWMutex
	entries map[widthKey]float64
}

func newWidthCache() *widthCache {
	c := &widthCache{}
	for i := range c.shards {
		c.shards[i].entries = make(map[widthKey]float64)
	}
	return c
}

func (c *widthCache) shard(k widthKey) *cacheShard {
	return &c.shards[(k.family^k.sizeBits)&shardMask]
}

func (c *widthCache) get(k widthKey) (float64, bool) {
	s := c.shard(k)
	s.mu.RLock()
	w, ok := s.entries[k]
	s.mu.RUnlock()
	return w, ok
}

func (c *widthCache) put(k widthKey, w float64) {
	s := c.shard(k)
	s.mu.Lock()
	s.entries[k] = w
	s.mu.Unlock()
}

// len reports the total number of memoized entries.
func (c *widthCache) len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}
