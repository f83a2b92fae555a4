// Package cache holds the bounded in-memory view of the chain that the
// explorer renders. It owns every block and transaction the UI shows.
package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/soonscan/soonscan/internal/model"
)

const defaultCapacity = 128

// Health is the sync status flag the status bar renders.
type Health struct {
	Degraded bool
	Message  string
	LastSync time.Time
	Latest   uint64
}

type entry struct {
	block model.BlockSummary
	final bool
}

// Cache is a bounded, ordered store of block summaries keyed by height,
// with a hash index and on-demand transaction lookup results. Writes
// come from the sync loop only; reads come from the render path. The
// lock is held for map operations only, never across I/O.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	blocks   map[uint64]entry
	heights  []uint64
	byHash   map[string]uint64
	lookups  map[string]model.TransactionSummary
	missing  map[string]struct{}
	pinned   uint64
	hasPin   bool
	health   Health
	changed  chan struct{}
}

// New returns a cache retaining at most capacity blocks. Non-positive
// capacities fall back to the default.
func New(capacity int) *Cache {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	return &Cache{
		capacity: capacity,
		blocks:   make(map[uint64]entry),
		byHash:   make(map[string]uint64),
		lookups:  make(map[string]model.TransactionSummary),
		missing:  make(map[string]struct{}),
		changed:  make(chan struct{}, 1),
	}
}

// Upsert stores a block summary. It is idempotent: an existing
// finalized entry is never replaced, and a provisional entry is
// replaced at most once per new value (the tip block confirming).
// Reports whether the cache changed.
func (c *Cache) Upsert(b model.BlockSummary, final bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, exists := c.blocks[b.Height]
	if exists {
		if old.final {
			return false
		}
		if old.block.Hash == b.Hash && old.final == final {
			return false
		}
		if old.block.Hash != b.Hash {
			delete(c.byHash, old.block.Hash)
		}
		c.blocks[b.Height] = entry{block: b, final: final}
		c.byHash[b.Hash] = b.Height
		c.notifyLocked()
		return true
	}

	c.blocks[b.Height] = entry{block: b, final: final}
	c.byHash[b.Hash] = b.Height

	i := sort.Search(len(c.heights), func(i int) bool { return c.heights[i] >= b.Height })
	c.heights = append(c.heights, 0)
	copy(c.heights[i+1:], c.heights[i:])
	c.heights[i] = b.Height

	c.evictLocked()
	c.notifyLocked()
	return true
}

// Get returns the block at height.
func (c *Cache) Get(height uint64) (model.BlockSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.blocks[height]
	return e.block, ok
}

// GetByHash returns the block with the given blockhash.
func (c *Cache) GetByHash(hash string) (model.BlockSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	height, ok := c.byHash[hash]
	if !ok {
		return model.BlockSummary{}, false
	}
	e, ok := c.blocks[height]
	return e.block, ok
}

// IsProvisional reports whether the entry at height awaits its
// confirming re-fetch.
func (c *Cache) IsProvisional(height uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.blocks[height]
	return ok && !e.final
}

// OrderedHeights returns all retained heights in ascending order.
func (c *Cache) OrderedHeights() []uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]uint64, len(c.heights))
	copy(out, c.heights)
	return out
}

// MaxHeight returns the highest retained height.
func (c *Cache) MaxHeight() (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.heights) == 0 {
		return 0, false
	}
	return c.heights[len(c.heights)-1], true
}

// Len returns the number of retained blocks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.heights)
}

// Pin protects the height from eviction until the selection moves.
func (c *Cache) Pin(height uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pinned = height
	c.hasPin = true
}

// Unpin releases the eviction protection.
func (c *Cache) Unpin() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hasPin = false
}

// NearestHeight returns the retained height closest to h by absolute
// distance, preferring the lower height on ties.
func (c *Cache) NearestHeight(h uint64) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return nearest(c.heights, h)
}

// PutLookup stores an on-demand transaction result and clears any
// stale missing marker for it.
func (c *Cache) PutLookup(tx model.TransactionSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lookups[tx.Hash] = tx
	delete(c.missing, tx.Hash)
	c.notifyLocked()
}

// MarkMissing records that the node does not know the hash, so the
// detail view can show an explicit not-found state.
func (c *Cache) MarkMissing(hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lookups[hash]; ok {
		return
	}
	c.missing[hash] = struct{}{}
	c.notifyLocked()
}

// MarkSynced records a successful sync cycle.
func (c *Cache) MarkSynced(latest uint64, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.health = Health{LastSync: at, Latest: latest}
	c.notifyLocked()
}

// MarkDegraded raises the transient status flag without touching the
// last good sync info.
func (c *Cache) MarkDegraded(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.health.Degraded = true
	c.health.Message = msg
	c.notifyLocked()
}

// Health returns the current sync status flag.
func (c *Cache) Health() Health {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.health
}

// Changed exposes the coalescing data-changed signal. The channel
// holds at most one pending notification.
func (c *Cache) Changed() <-chan struct{} {
	return c.changed
}

// Snapshot copies the renderable state. Block values share their
// immutable transaction slices with the cache, so the copy is cheap
// and stays valid after later upserts.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	blocks := make([]model.BlockSummary, 0, len(c.heights))
	for _, h := range c.heights {
		blocks = append(blocks, c.blocks[h].block)
	}

	lookups := make(map[string]model.TransactionSummary, len(c.lookups))
	for k, v := range c.lookups {
		lookups[k] = v
	}
	missing := make(map[string]struct{}, len(c.missing))
	for k := range c.missing {
		missing[k] = struct{}{}
	}

	return Snapshot{
		Blocks:  blocks,
		Lookups: lookups,
		Missing: missing,
		Health:  c.health,
	}
}

// evictLocked removes the oldest non-pinned entries until the retained
// set fits the capacity. A pinned entry may survive below the
// contiguous window; readers tolerate the resulting gap.
func (c *Cache) evictLocked() {
	for len(c.heights) > c.capacity {
		idx := -1
		for i, h := range c.heights {
			if c.hasPin && h == c.pinned {
				continue
			}
			idx = i
			break
		}
		if idx < 0 {
			return
		}
		c.removeLocked(idx)
	}
}

func (c *Cache) removeLocked(i int) {
	h := c.heights[i]
	if e, ok := c.blocks[h]; ok {
		delete(c.byHash, e.block.Hash)
		delete(c.blocks, h)
	}
	c.heights = append(c.heights[:i], c.heights[i+1:]...)
}

func (c *Cache) notifyLocked() {
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

// nearest picks the closest height in an ascending slice, ties to the
// lower side.
func nearest(heights []uint64, h uint64) (uint64, bool) {
	if len(heights) == 0 {
		return 0, false
	}
	i := sort.Search(len(heights), func(i int) bool { return heights[i] >= h })
	if i < len(heights) && heights[i] == h {
		return h, true
	}
	if i == 0 {
		return heights[0], true
	}
	if i == len(heights) {
		return heights[len(heights)-1], true
	}
	lower, upper := heights[i-1], heights[i]
	if h-lower <= upper-h {
		return lower, true
	}
	return upper, true
}
