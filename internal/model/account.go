package model

// AccountInfo describes an on-chain account as returned by the node.
// Only the one-shot lookup mode uses it; the interactive views work
// with blocks and transactions.
type AccountInfo struct {
	Address    string
	Lamports   uint64
	Owner      string
	Executable bool
	Space      uint64
}
