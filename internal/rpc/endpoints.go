package rpc

import "github.com/soonscan/soonscan/internal/model"

// Cluster endpoints. Unknown networks fall back to mainnet, matching
// the CLI default.
const (
	DevnetEndpoint  = "https://rpc.devnet.soo.network/rpc"
	TestnetEndpoint = "https://rpc.testnet.soo.network/rpc"
	MainnetEndpoint = "https://api.mainnet-beta.solana.com"
)

// Endpoint returns the JSON-RPC URL for a network.
func Endpoint(n model.Network) string {
	switch n {
	case model.Devnet:
		return DevnetEndpoint
	case model.Testnet:
		return TestnetEndpoint
	default:
		return MainnetEndpoint
	}
}
