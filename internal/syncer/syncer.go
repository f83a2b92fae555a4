// Package syncer keeps the block cache following the chain tip. One
// goroutine polls the node, walks new heights in ascending order, and
// serves on-demand transaction lookups between cycles.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/soonscan/soonscan/internal/model"
	"github.com/soonscan/soonscan/internal/rpc"
)

// Service fetches new blocks into the store on an interval.
type Service struct {
	logger       *zap.Logger
	network      model.Network
	metrics      SyncerMetrics
	store        BlockStore
	client       NodeClient
	sleep        func(context.Context, time.Duration) error
	pollInterval time.Duration
	burst        int
	window       uint64
	backoff      backoff.BackOff
	requests     chan string
	refresh      chan struct{}

	// Consecutive not-found tracking for the height the walk is stuck
	// on. Only the Run goroutine touches these.
	missHeight uint64
	missCount  int
}

// NewService builds a Service with dependencies.
func NewService(
	store BlockStore,
	client NodeClient,
	metrics SyncerMetrics,
	network model.Network,
	pollInterval time.Duration,
	logger *zap.Logger,
) (*Service, error) {
	if store == nil {
		return nil, errors.New("block store is required")
	}
	if client == nil {
		return nil, errors.New("node client is required")
	}
	if metrics == nil {
		return nil, errors.New("syncer metrics is required")
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	logger = logger.With(zap.String("network", string(network)))

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = backoffInitialInterval
	bo.MaxInterval = backoffMaxInterval
	bo.MaxElapsedTime = 0

	return &Service{
		logger:       logger,
		network:      network,
		metrics:      metrics,
		store:        store,
		client:       client,
		sleep:        sleepContext,
		pollInterval: pollInterval,
		burst:        catchUpBurst,
		window:       initialWindow,
		backoff:      bo,
		requests:     make(chan string, requestQueueCapacity),
		refresh:      make(chan struct{}, 1),
	}, nil
}

// RequestTransaction queues an on-demand transaction lookup. It never
// blocks; requests beyond the queue capacity are dropped.
func (s *Service) RequestTransaction(hash string) {
	select {
	case s.requests <- hash:
	default:
		s.logger.Debug("lookup queue full, dropping request", zap.String("hash", hash))
	}
}

// RequestRefresh cuts the current poll wait short.
func (s *Service) RequestRefresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Run drives the sync loop until the context is canceled. Cycle
// failures flag the store as degraded and back off exponentially; the
// backoff resets on the next clean cycle.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := s.backoff.NextBackOff()
			s.store.MarkDegraded(degradeMessage(err))
			s.logger.Warn("sync cycle failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		s.backoff.Reset()
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	latest, ingested, caughtUp, err := s.cycle(ctx)
	s.metrics.ObserveCycle(err, ingested, started)
	if err != nil {
		return err
	}

	s.store.MarkSynced(latest, time.Now())
	if ingested > 0 {
		s.logger.Debug("ingested blocks", zap.Int("blocks", ingested), zap.Uint64("latest", latest))
	}
	if !caughtUp {
		// Burst budget hit mid-backlog; drain without waiting.
		return nil
	}
	return s.wait(ctx, s.pollInterval)
}

// cycle fetches the chain tip and every retained-window height above
// the store's maximum, ascending, upserting each block before the next
// request. The block at the observed tip stays provisional until a
// later cycle confirms it.
func (s *Service) cycle(ctx context.Context) (latest uint64, ingested int, caughtUp bool, err error) {
	latest, err = s.client.LatestHeight(ctx)
	if err != nil {
		return 0, 0, false, fmt.Errorf("latest height: %w", err)
	}

	if err = s.confirmTip(ctx, latest); err != nil {
		return latest, 0, false, fmt.Errorf("confirm tip: %w", err)
	}

	start := s.nextHeight(latest)
	if start > latest {
		return latest, 0, true, nil
	}

	end := latest
	if span := uint64(s.burst); latest-start+1 > span {
		end = start + span - 1
	}

	for h := start; h <= end; h++ {
		if ctx.Err() != nil {
			return latest, ingested, false, ctx.Err()
		}
		b, fetchErr := s.client.BlockByHeight(ctx, h)
		if fetchErr != nil {
			if errors.Is(fetchErr, rpc.ErrNotFound) {
				if s.recordMiss(h) {
					s.logger.Info("slot skipped, walking past", zap.Uint64("height", h))
					continue
				}
				// The node has not served this height yet; retry
				// next interval without escalating.
				return latest, ingested, true, nil
			}
			return latest, ingested, false, fmt.Errorf("fetch block %d: %w", h, fetchErr)
		}
		s.clearMiss(h)
		s.store.Upsert(b, h < latest)
		ingested++
	}

	return latest, ingested, end == latest, nil
}

// confirmTip re-fetches the provisional tip once the chain has moved
// past it and stores the finalized version.
func (s *Service) confirmTip(ctx context.Context, latest uint64) error {
	max, ok := s.store.MaxHeight()
	if !ok || max >= latest || !s.store.IsProvisional(max) {
		return nil
	}

	b, err := s.client.BlockByHeight(ctx, max)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			// Tip vanished; it stays provisional and the next cycle
			// retries.
			return nil
		}
		return err
	}
	s.store.Upsert(b, true)
	return nil
}

// nextHeight picks where the ascending walk starts. An empty store
// backfills a recent window instead of the whole chain.
func (s *Service) nextHeight(latest uint64) uint64 {
	max, ok := s.store.MaxHeight()
	if !ok {
		if latest >= s.window {
			return latest - s.window + 1
		}
		return 0
	}
	return max + 1
}

// recordMiss counts consecutive cycles stuck on the same not-found
// height and reports whether to give up on it as a skipped slot.
func (s *Service) recordMiss(h uint64) bool {
	if s.missCount == 0 || s.missHeight != h {
		s.missHeight, s.missCount = h, 1
		return false
	}
	s.missCount++
	if s.missCount > skippedSlotRetries {
		s.missHeight, s.missCount = 0, 0
		return true
	}
	return false
}

func (s *Service) clearMiss(h uint64) {
	if s.missCount > 0 && s.missHeight == h {
		s.missHeight, s.missCount = 0, 0
	}
}

// wait blocks for the poll interval, serving queued transaction
// lookups as they arrive. A refresh request ends the wait early.
func (s *Service) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case hash := <-s.requests:
			s.lookup(ctx, hash)
		case <-s.refresh:
			return nil
		case <-timer.C:
			return nil
		}
	}
}

func (s *Service) lookup(ctx context.Context, hash string) {
	started := time.Now()
	tx, err := s.client.TransactionByHash(ctx, hash)
	s.metrics.ObserveLookup(err, started)
	if err == nil {
		s.store.PutLookup(tx)
		return
	}
	if errors.Is(err, rpc.ErrNotFound) {
		s.store.MarkMissing(hash)
		return
	}
	if ctx.Err() != nil {
		return
	}
	s.logger.Warn("transaction lookup failed", zap.String("hash", hash), zap.Error(err))
	s.store.MarkDegraded(degradeMessage(err))
}

func degradeMessage(err error) string {
	if errors.Is(err, rpc.ErrMalformed) {
		return "node returned malformed data"
	}
	return "node unreachable"
}

// sleepContext is the default sleep: it returns early with the
// context's error when the context ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
