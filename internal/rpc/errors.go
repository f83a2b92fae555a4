package rpc

import "errors"

// Failure kinds callers branch on with errors.Is. Network and malformed
// failures are worth retrying with backoff; not-found is definitive,
// except for heights the node has simply not indexed yet.
var (
	ErrNotFound  = errors.New("not found")
	ErrNetwork   = errors.New("network failure")
	ErrMalformed = errors.New("malformed response")
)
