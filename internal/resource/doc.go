// Package resource implements the Controller for process-wide limits on the
// memory held by bit buffers and on parallel buffer workers.
//
//	┌───────────────────────────────────────────┐
//	│                Controller                 │
//	├─────────────────────┬─────────────────────┤
//	│  Memory Limit       │  Workers (sem)      │
//	│  (fail-fast)        │  (blocking)         │
//	├─────────────────────┼─────────────────────┤
//	│  AcquireMemory      │  AcquireWorker      │
//	│  ReleaseMemory      │  TryAcquireWorker   │
//	│  MemoryUsage / Peak │  ReleaseWorker      │
//	└─────────────────────┴─────────────────────┘
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic
// counters for usage tracking. AcquireMemory never blocks; it returns
// ErrMemoryLimitExceeded so the allocator can report the failure:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//	if err := rc.AcquireMemory(1 << 20); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(1 << 20)
//
// # Worker Limits
//
// Buffer.Parallel acquires one worker slot per chunk goroutine:
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource
