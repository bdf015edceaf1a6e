package quota

import "context"

// The async variants exist so request handlers can fan out the seat and
// storage reads (storage metering can be slow on large tenants) without
// dedicating a goroutine per check themselves. Each returns a buffered
// channel that receives exactly one result; cancellation is the
// caller's context.

// SeatUsageResult pairs a snapshot with the error that produced it.
type SeatUsageResult struct {
	Usage SeatUsage
	Err   error
}

// StorageUsageResult pairs a snapshot with the error that produced it.
type StorageUsageResult struct {
	Usage StorageUsage
	Err   error
}

// UsageAsync runs Usage in a goroutine and returns its result channel.
func (t *SeatTracker) UsageAsync(ctx context.Context, tenantID uint) <-chan SeatUsageResult {
	ch := make(chan SeatUsageResult, 1)
	go func() {
		usage, err := t.Usage(ctx, tenantID)
		ch <- SeatUsageResult{Usage: usage, Err: err}
	}()
	return ch
}

// UsageAsync runs Usage in a goroutine and returns its result channel.
func (t *StorageTracker) UsageAsync(ctx context.Context, tenantID uint) <-chan StorageUsageResult {
	ch := make(chan StorageUsageResult, 1)
	go func() {
		usage, err := t.Usage(ctx, tenantID)
		ch <- StorageUsageResult{Usage: usage, Err: err}
	}()
	return ch
}
