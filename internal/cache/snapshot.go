package cache

import (
	"sort"

	"github.com/soonscan/soonscan/internal/model"
)

// TxState classifies a transaction resolution against a snapshot.
type TxState int

const (
	// TxUnknown means the hash is not resolvable yet; the view shows a
	// loading placeholder while the lookup is in flight.
	TxUnknown TxState = iota
	// TxFound means the transaction is resolvable from cached data.
	TxFound
	// TxMissing means the node reported the hash as nonexistent.
	TxMissing
)

// Snapshot is an immutable read model taken once per render cycle.
type Snapshot struct {
	Blocks  []model.BlockSummary
	Lookups map[string]model.TransactionSummary
	Missing map[string]struct{}
	Health  Health
}

// IndexOf locates height within the ascending block slice.
func (s Snapshot) IndexOf(height uint64) (int, bool) {
	i := sort.Search(len(s.Blocks), func(i int) bool { return s.Blocks[i].Height >= height })
	if i < len(s.Blocks) && s.Blocks[i].Height == height {
		return i, true
	}
	return 0, false
}

// Block returns the block at height.
func (s Snapshot) Block(height uint64) (model.BlockSummary, bool) {
	i, ok := s.IndexOf(height)
	if !ok {
		return model.BlockSummary{}, false
	}
	return s.Blocks[i], true
}

// Nearest returns the retained height closest to h, ties to the lower
// side. Used to re-resolve a focus key the eviction removed.
func (s Snapshot) Nearest(h uint64) (uint64, bool) {
	heights := make([]uint64, len(s.Blocks))
	for i, b := range s.Blocks {
		heights[i] = b.Height
	}
	return nearest(heights, h)
}

// Transaction resolves a hash, trying the containing block first, then
// on-demand lookup results, then explicit missing markers.
func (s Snapshot) Transaction(height uint64, hash string) (model.TransactionSummary, TxState) {
	if b, ok := s.Block(height); ok {
		for _, tx := range b.Transactions {
			if tx.Hash == hash {
				return tx, TxFound
			}
		}
	}
	if tx, ok := s.Lookups[hash]; ok {
		return tx, TxFound
	}
	if _, ok := s.Missing[hash]; ok {
		return model.TransactionSummary{}, TxMissing
	}
	return model.TransactionSummary{}, TxUnknown
}
