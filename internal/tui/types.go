package tui

import (
	"github.com/soonscan/soonscan/internal/cache"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SnapshotStore interface {
		Snapshot() cache.Snapshot
		Changed() <-chan struct{}
		Pin(height uint64)
		Unpin()
	}
	SyncControl interface {
		RequestTransaction(hash string)
		RequestRefresh()
	}
)
