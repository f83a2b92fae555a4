package model

// TxStatus describes the execution outcome of a transaction.
type TxStatus string

var (
	// TxPending marks a transaction not yet finalized by the chain.
	TxPending TxStatus = "pending"
	// TxSuccess marks a transaction that executed without error.
	TxSuccess TxStatus = "success"
	// TxFailed marks a transaction whose execution returned an error.
	TxFailed TxStatus = "failed"
)

// TransactionSummary represents a transaction within a block's list.
type TransactionSummary struct {
	Hash           string
	Height         uint64
	Status         TxStatus
	Signer         string
	Fee            uint64
	ComputeUnits   uint64
	BalanceChanges []BalanceChange
}

// BalanceChange records the lamport balance movement of one account
// across a transaction.
type BalanceChange struct {
	Account      string
	PreLamports  uint64
	PostLamports uint64
}

// Delta returns the signed lamport difference caused by the transaction.
func (c BalanceChange) Delta() int64 {
	return int64(c.PostLamports) - int64(c.PreLamports)
}
