package bitvec

import (
	"log/slog"

	"github.com/hupe1980/bitvec/internal/alloc"
	"github.com/hupe1980/bitvec/internal/mmap"
	"github.com/hupe1980/bitvec/internal/resource"
	"github.com/hupe1980/bitvec/order"
)

// Allocator is the host allocator contract: zeroed, 8-byte aligned blocks
// addressed in bytes and freed with the size they were allocated with.
type Allocator = alloc.Allocator

// ResourceController bounds the memory and workers used by one or more
// buffers.
type ResourceController = resource.Controller

// NewResourceController creates a controller shared by buffers built with
// WithResourceController. A memoryLimit of 0 only tracks usage; a maxWorkers
// of 0 defaults to GOMAXPROCS.
func NewResourceController(memoryLimit int64, maxWorkers int) *ResourceController {
	return resource.NewController(resource.Config{
		MemoryLimitBytes: memoryLimit,
		MaxWorkers:       int64(maxWorkers),
	})
}

type options struct {
	allocator        Allocator
	offHeap          bool
	order            order.Order
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *ResourceController
	memoryLimit      int64
	maxWorkers       int
}

// Option configures buffer construction.
type Option func(*options)

// WithAllocator sets the host allocator. The allocator does its own memory
// accounting; WithMemoryLimit does not apply to it.
//
// If nil is passed, the default heap allocator is used.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithOffHeap stores elements in anonymous memory mappings instead of the Go
// heap, advised for random access. Such buffers must be released with
// Release.
func WithOffHeap() Option {
	return func(o *options) {
		o.offHeap = true
	}
}

// WithOrder sets the bit order used by Get, Set, Push and the copy
// operations. Defaults to order.Lsb0.
func WithOrder(ord order.Order) Option {
	return func(o *options) {
		if ord == nil {
			ord = order.Default
		}
		o.order = ord
	}
}

// WithMetricsCollector configures a metrics collector for allocation events.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitvec.BasicMetricsCollector{}
//	buf := bitvec.WithCapacity[uint64](1024, bitvec.WithMetricsCollector(metrics))
//	// ... use buf ...
//	stats := metrics.GetStats()
//	fmt.Printf("Allocations: %d, Bytes: %d\n", stats.AllocCount, stats.AllocBytes)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for allocation events.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMemoryLimit caps the bytes the buffer may allocate. Growth beyond the
// limit fails with ErrMemoryLimitExceeded.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMaxWorkers bounds the concurrency of Parallel.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithResourceController shares a memory budget and worker pool between
// buffers. It takes precedence over WithMemoryLimit and WithMaxWorkers.
func WithResourceController(rc *ResourceController) Option {
	return func(o *options) {
		o.controller = rc
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{
		order:            order.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(o)
		}
	}

	if o.controller == nil {
		o.controller = NewResourceController(o.memoryLimit, o.maxWorkers)
	}
	if o.allocator == nil {
		if o.offHeap {
			o.allocator = alloc.NewMmap(
				alloc.WithMemoryAcquirer(o.controller),
				alloc.WithAccessPattern(mmap.AccessRandom),
			)
		} else {
			o.allocator = alloc.NewHeap(alloc.WithMemoryAcquirer(o.controller))
		}
	}
	o.logger = o.logger.WithAllocator(o.allocator.Name())

	return o
}
