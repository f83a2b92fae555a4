// Package model defines domain models for the explorer.
package model

import "time"

// BlockSummary represents a finalized block as shown in the explorer.
// A summary is immutable once finalized; the cache allows one
// provisional replace for blocks first seen at the chain tip.
type BlockSummary struct {
	Height       uint64
	Hash         string
	ParentHash   string
	Timestamp    time.Time
	Transactions []TransactionSummary
}

// TxCount returns the number of transactions carried by the block.
func (b BlockSummary) TxCount() int {
	return len(b.Transactions)
}
