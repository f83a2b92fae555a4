package syncer

import (
	"context"
	"time"

	"github.com/soonscan/soonscan/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		LatestHeight(ctx context.Context) (uint64, error)
		BlockByHeight(ctx context.Context, height uint64) (model.BlockSummary, error)
		TransactionByHash(ctx context.Context, hash string) (model.TransactionSummary, error)
	}
	BlockStore interface {
		Upsert(b model.BlockSummary, final bool) bool
		MaxHeight() (uint64, bool)
		IsProvisional(height uint64) bool
		PutLookup(tx model.TransactionSummary)
		MarkMissing(hash string)
		MarkSynced(latest uint64, at time.Time)
		MarkDegraded(msg string)
	}
	SyncerMetrics interface {
		ObserveCycle(err error, blocks int, started time.Time)
		ObserveLookup(err error, started time.Time)
	}
)
