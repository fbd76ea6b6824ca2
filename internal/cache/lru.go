// Package cache implements the in-process redirect cache.
//
// The cache is a bounded LRU keyed by short code. It is an optimization
// only: entries are never expired on a timer and are removed by writers
// through Delete after a successful update or delete.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Entry is the cached projection of a short URL record
type Entry struct {
	LongURL   string
	ExpiresAt *time.Time
}

type item struct {
	code  string
	entry Entry
}

// LRU is a fixed-capacity least-recently-used cache. The list front is the
// least recently used entry and the back the most recently used one.
type LRU struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

// NewLRU creates a new LRU holding at most capacity entries
func NewLRU(capacity int) *LRU {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get returns the entry for code and marks it most recently used
func (c *LRU) Get(code string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[code]
	if !ok {
		return Entry{}, false
	}
	c.order.MoveToBack(elem)
	return elem.Value.(*item).entry, true
}

// Set inserts or overwrites the entry for code. When the cache grows past
// its capacity exactly one entry, the least recently used, is evicted.
func (c *LRU) Set(code string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[code]; ok {
		elem.Value.(*item).entry = entry
		c.order.MoveToBack(elem)
		return
	}

	c.items[code] = c.order.PushBack(&item{code: code, entry: entry})

	if c.order.Len() > c.capacity {
		c.evict()
	}
}

// evict removes the front of the recency list
func (c *LRU) evict() {
	elem := c.order.Front()
	if elem == nil {
		return
	}
	c.order.Remove(elem)
	delete(c.items, elem.Value.(*item).code)
}

// Delete removes the entry for code, if any
func (c *LRU) Delete(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[code]; ok {
		c.order.Remove(elem)
		delete(c.items, code)
	}
}

// Len returns the number of cached entries
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the maximum number of entries
func (c *LRU) Capacity() int {
	return c.capacity
}

// Keys returns the cached codes from least to most recently used
func (c *LRU) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*item).code)
	}
	return keys
}

// Reset drops every entry
func (c *LRU) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
}
