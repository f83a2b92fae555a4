package syncer

import "time"

const (
	defaultPollInterval = 3 * time.Second

	catchUpBurst  = 32
	initialWindow = 32

	skippedSlotRetries = 2

	requestQueueCapacity = 16

	backoffInitialInterval = 500 * time.Millisecond
	backoffMaxInterval     = 30 * time.Second
)
