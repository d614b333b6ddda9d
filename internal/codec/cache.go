package codec

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

const defaultCacheEntries = 256

// Cache memoizes the parsed tree of raw XML text. Entries are never mutated
// after they are stored, and every Parse builds a fresh Document from them,
// so one Cache is safe to share between goroutines.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]*cacheEntry
	maxEntries int
	clock      atomic.Uint64
}

type cacheEntry struct {
	tree     xmlnode.Node
	lastRead atomic.Uint64
}

// NewCache returns a cache holding at most maxEntries trees. Zero or less
// means the default size.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = defaultCacheEntries
	}
	return &Cache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: maxEntries,
	}
}

// Parse is codec.Parse with the tokenizing step cached. Malformed text is
// not cached.
func (c *Cache) Parse(text string) (Document, error) {
	c.mu.RLock()
	e, ok := c.entries[text]
	c.mu.RUnlock()

	if ok {
		e.lastRead.Store(c.clock.Add(1))
		return fromTree(e.tree)
	}

	tree, err := xmlnode.Parse(text, parseOptions)
	if err != nil {
		return nil, err
	}

	entry := &cacheEntry{tree: tree}
	entry.lastRead.Store(c.clock.Add(1))

	c.mu.Lock()
	c.entries[text] = entry
	if len(c.entries) > c.maxEntries {
		c.evict(max(1, c.maxEntries/5))
	}
	c.mu.Unlock()

	return fromTree(tree)
}

// Len reports the number of cached trees.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// evict removes the count least recently read entries. Callers hold mu.
func (c *Cache) evict(count int) {
	type keyAge struct {
		key  string
		tick uint64
	}

	ages := make([]keyAge, 0, len(c.entries))
	for k, e := range c.entries {
		ages = append(ages, keyAge{k, e.lastRead.Load()})
	}
	sort.Slice(ages, func(i, j int) bool { return ages[i].tick < ages[j].tick })

	for i := 0; i < min(count, len(ages)); i++ {
		delete(c.entries, ages[i].key)
	}
}
