package rpc

import (
	"fmt"
	"time"

	"github.com/soonscan/soonscan/internal/model"
	"github.com/soonscan/soonscan/pkg/safe"
)

// blockToSummary validates a getBlock result and converts it into the
// domain shape. The requested slot is authoritative for the height; the
// node does not echo it back.
func blockToSummary(height uint64, res blockResult) (model.BlockSummary, error) {
	if res.Blockhash == "" {
		return model.BlockSummary{}, fmt.Errorf("missing blockhash")
	}
	if res.ParentSlot >= height && height > 0 {
		return model.BlockSummary{}, fmt.Errorf("parent slot %d not below slot %d", res.ParentSlot, height)
	}

	timestamp, err := blockTimestamp(res.BlockTime)
	if err != nil {
		return model.BlockSummary{}, err
	}

	txs := make([]model.TransactionSummary, 0, len(res.Transactions))
	for i, env := range res.Transactions {
		tx, err := txToSummary(height, env)
		if err != nil {
			return model.BlockSummary{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}

	return model.BlockSummary{
		Height:       height,
		Hash:         res.Blockhash,
		ParentHash:   res.PreviousBlockhash,
		Timestamp:    timestamp,
		Transactions: txs,
	}, nil
}

// txToSummary validates one transaction envelope against the fields the
// explorer renders.
func txToSummary(height uint64, env txEnvelope) (model.TransactionSummary, error) {
	if len(env.Transaction.Signatures) == 0 {
		return model.TransactionSummary{}, fmt.Errorf("missing signatures")
	}
	hash := env.Transaction.Signatures[0]
	if hash == "" {
		return model.TransactionSummary{}, fmt.Errorf("empty signature")
	}
	if len(env.Transaction.Message.AccountKeys) == 0 {
		return model.TransactionSummary{}, fmt.Errorf("transaction %s missing account keys", hash)
	}

	tx := model.TransactionSummary{
		Hash:   hash,
		Height: height,
		Status: txStatus(env.Meta),
		Signer: env.Transaction.Message.AccountKeys[0],
	}

	meta := env.Meta
	if meta == nil {
		return tx, nil
	}

	tx.Fee = meta.Fee
	if meta.ComputeUnitsConsumed != nil {
		tx.ComputeUnits = *meta.ComputeUnitsConsumed
	}

	changes, err := balanceChanges(env.Transaction.Message.AccountKeys, meta)
	if err != nil {
		return model.TransactionSummary{}, fmt.Errorf("transaction %s: %w", hash, err)
	}
	tx.BalanceChanges = changes

	return tx, nil
}

// txStatus maps meta into the status enum. A missing meta means the
// node has not produced execution results yet.
func txStatus(meta *txMeta) model.TxStatus {
	if meta == nil {
		return model.TxPending
	}
	if _, ok := meta.Status["Ok"]; ok {
		return model.TxSuccess
	}
	if len(meta.Status) == 0 && isNull(meta.Err) {
		return model.TxSuccess
	}
	return model.TxFailed
}

// balanceChanges zips account keys with pre/post lamport balances.
// Balances are range-checked so signed delta math cannot overflow.
func balanceChanges(accounts []string, meta *txMeta) ([]model.BalanceChange, error) {
	if len(meta.PreBalances) == 0 && len(meta.PostBalances) == 0 {
		return nil, nil
	}
	if len(meta.PreBalances) != len(meta.PostBalances) {
		return nil, fmt.Errorf("balance arrays disagree: %d pre vs %d post", len(meta.PreBalances), len(meta.PostBalances))
	}
	if len(meta.PreBalances) > len(accounts) {
		return nil, fmt.Errorf("%d balances for %d accounts", len(meta.PreBalances), len(accounts))
	}

	changes := make([]model.BalanceChange, 0, len(meta.PreBalances))
	for i := range meta.PreBalances {
		if _, err := safe.Int64(meta.PreBalances[i]); err != nil {
			return nil, fmt.Errorf("pre balance %d: %w", i, err)
		}
		if _, err := safe.Int64(meta.PostBalances[i]); err != nil {
			return nil, fmt.Errorf("post balance %d: %w", i, err)
		}
		changes = append(changes, model.BalanceChange{
			Account:      accounts[i],
			PreLamports:  meta.PreBalances[i],
			PostLamports: meta.PostBalances[i],
		})
	}
	return changes, nil
}

// blockTimestamp converts a nullable unix block time, rejecting
// negative values the schema does not allow.
func blockTimestamp(bt *int64) (time.Time, error) {
	if bt == nil {
		return time.Time{}, nil
	}
	sec, err := safe.Uint64(*bt)
	if err != nil {
		return time.Time{}, fmt.Errorf("block time: %w", err)
	}
	return time.Unix(int64(sec), 0).UTC(), nil
}
