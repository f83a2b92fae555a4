package model

// Network identifies the chain cluster the explorer is pointed at.
type Network string

var (
	Devnet  Network = "devnet"
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)
