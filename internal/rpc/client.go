// Package rpc adapts the node's JSON-RPC query interface into domain
// models. It is a thin stateless transport layer: no caching, no
// retries, eager validation of everything the node returns.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/ratelimit"

	"github.com/soonscan/soonscan/internal/model"
)

// notFoundCodes are the node error codes for heights that were skipped
// or are not yet available from the queried node.
var notFoundCodes = map[int]struct{}{
	-32004: {},
	-32007: {},
	-32009: {},
}

var blockOptions = map[string]any{
	"encoding":                       "json",
	"transactionDetails":             "full",
	"rewards":                        false,
	"maxSupportedTransactionVersion": 0,
}

var transactionOptions = map[string]any{
	"encoding":                       "json",
	"maxSupportedTransactionVersion": 0,
}

// Client issues JSON-RPC queries to a single node endpoint.
type Client struct {
	http    *resty.Client
	limiter ratelimit.Limiter
	metrics RPCMetrics
}

// NewClient constructs a rate-limited, instrumented node client.
// A non-positive rps disables request pacing.
func NewClient(endpoint string, timeout time.Duration, rps int, metrics RPCMetrics) (*Client, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}

	httpClient := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:    httpClient,
		limiter: limiter,
		metrics: metrics,
	}, nil
}

// LatestHeight returns the node's current slot.
func (c *Client) LatestHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_slot", err, started)
	}()

	raw, err := c.call(ctx, "getSlot", []any{})
	if err != nil {
		return 0, fmt.Errorf("get slot: %w", err)
	}
	if err = json.Unmarshal(raw, &height); err != nil {
		return 0, fmt.Errorf("decode slot: %w: %w", ErrMalformed, err)
	}
	return height, nil
}

// BlockByHeight fetches and validates the block at the given slot.
func (c *Client) BlockByHeight(ctx context.Context, height uint64) (block model.BlockSummary, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block", err, started)
	}()

	raw, err := c.call(ctx, "getBlock", []any{height, blockOptions})
	if err != nil {
		return model.BlockSummary{}, fmt.Errorf("get block %d: %w", height, err)
	}
	if isNull(raw) {
		return model.BlockSummary{}, fmt.Errorf("block %d: %w", height, ErrNotFound)
	}

	var res blockResult
	if err = json.Unmarshal(raw, &res); err != nil {
		return model.BlockSummary{}, fmt.Errorf("decode block %d: %w: %w", height, ErrMalformed, err)
	}
	block, err = blockToSummary(height, res)
	if err != nil {
		return model.BlockSummary{}, fmt.Errorf("block %d: %w: %w", height, ErrMalformed, err)
	}
	return block, nil
}

// TransactionByHash fetches and validates a transaction by signature.
func (c *Client) TransactionByHash(ctx context.Context, hash string) (tx model.TransactionSummary, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transaction", err, started)
	}()

	raw, err := c.call(ctx, "getTransaction", []any{hash, transactionOptions})
	if err != nil {
		return model.TransactionSummary{}, fmt.Errorf("get transaction %s: %w", hash, err)
	}
	if isNull(raw) {
		return model.TransactionSummary{}, fmt.Errorf("transaction %s: %w", hash, ErrNotFound)
	}

	var res txDetailResult
	if err = json.Unmarshal(raw, &res); err != nil {
		return model.TransactionSummary{}, fmt.Errorf("decode transaction %s: %w: %w", hash, ErrMalformed, err)
	}
	tx, err = txToSummary(res.Slot, txEnvelope{Meta: res.Meta, Transaction: res.Transaction})
	if err != nil {
		return model.TransactionSummary{}, fmt.Errorf("transaction %s: %w: %w", hash, ErrMalformed, err)
	}
	return tx, nil
}

// AccountInfo fetches on-chain account details for an address.
func (c *Client) AccountInfo(ctx context.Context, address string) (info model.AccountInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_account_info", err, started)
	}()

	raw, err := c.call(ctx, "getAccountInfo", []any{address, map[string]any{"encoding": "base58"}})
	if err != nil {
		return model.AccountInfo{}, fmt.Errorf("get account %s: %w", address, err)
	}

	var res accountInfoResult
	if err = json.Unmarshal(raw, &res); err != nil {
		return model.AccountInfo{}, fmt.Errorf("decode account %s: %w: %w", address, ErrMalformed, err)
	}
	if res.Value == nil {
		return model.AccountInfo{}, fmt.Errorf("account %s: %w", address, ErrNotFound)
	}
	return model.AccountInfo{
		Address:    address,
		Lamports:   res.Value.Lamports,
		Owner:      res.Value.Owner,
		Executable: res.Value.Executable,
		Space:      res.Value.Space,
	}, nil
}

// SignatureStatus fetches the confirmation status for a signature,
// searching the node's full transaction history.
func (c *Client) SignatureStatus(ctx context.Context, hash string) (status SignatureStatus, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_signature_statuses", err, started)
	}()

	raw, err := c.call(ctx, "getSignatureStatuses", []any{[]string{hash}, map[string]any{"searchTransactionHistory": true}})
	if err != nil {
		return SignatureStatus{}, fmt.Errorf("get signature statuses %s: %w", hash, err)
	}

	var res signatureStatusesResult
	if err = json.Unmarshal(raw, &res); err != nil {
		return SignatureStatus{}, fmt.Errorf("decode signature statuses %s: %w: %w", hash, ErrMalformed, err)
	}
	if len(res.Value) == 0 || res.Value[0] == nil {
		return SignatureStatus{}, fmt.Errorf("signature %s: %w", hash, ErrNotFound)
	}

	v := res.Value[0]
	status = SignatureStatus{
		Slot:               v.Slot,
		Confirmations:      v.Confirmations,
		ConfirmationStatus: v.ConfirmationStatus,
		OK:                 isNull(v.Err),
	}
	if !status.OK {
		status.ErrDetail = string(v.Err)
	}
	return status, nil
}

// call performs one JSON-RPC round trip and classifies every failure.
func (c *Client) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	c.limiter.Take()

	body := rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("")
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", method, ctx.Err())
		}
		return nil, fmt.Errorf("%s: %w: %w", method, ErrNetwork, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%s: %w: http status %s", method, ErrNetwork, resp.Status())
	}

	var envelope rpcResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrMalformed, err)
	}
	if envelope.Error != nil {
		if _, ok := notFoundCodes[envelope.Error.Code]; ok {
			return nil, fmt.Errorf("%s: %w: %s (code %d)", method, ErrNotFound, envelope.Error.Message, envelope.Error.Code)
		}
		return nil, fmt.Errorf("%s: %w: %s (code %d)", method, ErrNetwork, envelope.Error.Message, envelope.Error.Code)
	}
	return envelope.Result, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
