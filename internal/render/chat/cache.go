package chat

import (
	"container/list"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/samsaffron/term-chat/internal/session"
)

// BlockKey derives a cache key from a message's position and everything its
// rendering depends on. Distinct content always yields a distinct key, so a
// streaming message never hits output rendered for older content.
func BlockKey(index int, msg session.Message, width int, dark bool) string {
	h := xxhash.New()
	_, _ = h.WriteString(string(msg.Role))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(msg.Content)
	key := strconv.Itoa(index) + ":" + strconv.Itoa(width) + ":" + strconv.FormatUint(h.Sum64(), 16)
	if dark {
		return key + ":d"
	}
	return key + ":l"
}

// BlockCache is an LRU cache for rendered MessageBlocks.
// It keeps memory bounded while avoiding re-rendering unchanged messages.
type BlockCache struct {
	mu      sync.Mutex
	maxSize int
	cache   map[string]*list.Element
	lruList *list.List

	hits   int
	misses int
}

// cacheEntry holds a cache key-value pair for the LRU list.
type cacheEntry struct {
	key   string
	block *MessageBlock
}

// NewBlockCache creates a new block cache with the given maximum size.
func NewBlockCache(maxSize int) *BlockCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &BlockCache{
		maxSize: maxSize,
		cache:   make(map[string]*list.Element),
		lruList: list.New(),
	}
}

// Get retrieves a block from the cache, returning nil if not found.
// Accessing a block moves it to the front of the LRU list.
func (c *BlockCache) Get(key string) *MessageBlock {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.hits++
		c.lruList.MoveToFront(elem)
		return elem.Value.(*cacheEntry).block
	}
	c.misses++
	return nil
}

// Put adds a block to the cache, evicting the least recently used
// block if the cache is at capacity.
func (c *BlockCache) Put(key string, block *MessageBlock) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.lruList.MoveToFront(elem)
		elem.Value.(*cacheEntry).block = block
		return
	}

	if c.lruList.Len() >= c.maxSize {
		c.evictOldest()
	}

	entry := &cacheEntry{key: key, block: block}
	c.cache[key] = c.lruList.PushFront(entry)
}

// evictOldest removes the least recently used entry.
// Must be called with lock held.
func (c *BlockCache) evictOldest() {
	oldest := c.lruList.Back()
	if oldest != nil {
		entry := oldest.Value.(*cacheEntry)
		delete(c.cache, entry.key)
		c.lruList.Remove(oldest)
	}
}

// InvalidateAll clears the entire cache.
// Call this on terminal resize or theme change.
func (c *BlockCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*list.Element)
	c.lruList.Init()
}

// Size returns the current number of cached blocks.
func (c *BlockCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// Stats returns the hit and miss counters.
func (c *BlockCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
