package rpc

import (
	"encoding/json"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// SignatureStatus reflects getSignatureStatuses output for one signature.
type SignatureStatus struct {
	Slot               uint64
	Confirmations      *uint64
	ConfirmationStatus string
	OK                 bool
	ErrDetail          string
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type blockResult struct {
	Blockhash         string       `json:"blockhash"`
	PreviousBlockhash string       `json:"previousBlockhash"`
	ParentSlot        uint64       `json:"parentSlot"`
	BlockTime         *int64       `json:"blockTime"`
	Transactions      []txEnvelope `json:"transactions"`
}

type txEnvelope struct {
	Meta        *txMeta `json:"meta"`
	Transaction txBody  `json:"transaction"`
}

type txBody struct {
	Signatures []string  `json:"signatures"`
	Message    txMessage `json:"message"`
}

type txMessage struct {
	AccountKeys []string `json:"accountKeys"`
}

type txMeta struct {
	Err                  json.RawMessage            `json:"err"`
	Status               map[string]json.RawMessage `json:"status"`
	Fee                  uint64                     `json:"fee"`
	PreBalances          []uint64                   `json:"preBalances"`
	PostBalances         []uint64                   `json:"postBalances"`
	ComputeUnitsConsumed *uint64                    `json:"computeUnitsConsumed"`
}

type txDetailResult struct {
	Slot        uint64  `json:"slot"`
	BlockTime   *int64  `json:"blockTime"`
	Meta        *txMeta `json:"meta"`
	Transaction txBody  `json:"transaction"`
}

type accountInfoResult struct {
	Value *accountValue `json:"value"`
}

type accountValue struct {
	Lamports   uint64 `json:"lamports"`
	Owner      string `json:"owner"`
	Executable bool   `json:"executable"`
	Space      uint64 `json:"space"`
}

type signatureStatusesResult struct {
	Value []*signatureStatusValue `json:"value"`
}

type signatureStatusValue struct {
	Slot               uint64          `json:"slot"`
	Confirmations      *uint64         `json:"confirmations"`
	ConfirmationStatus string          `json:"confirmationStatus"`
	Err                json.RawMessage `json:"err"`
}
