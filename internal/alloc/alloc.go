package alloc

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/bitvec/internal/mmap"
)

// ErrAllocationFailed wraps every allocator failure.
var ErrAllocationFailed = errors.New("alloc: allocation failed")

// MemoryAcquirer is an interface for acquiring memory.
type MemoryAcquirer interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Allocator is the host allocator contract used by bit buffers.
type Allocator interface {
	// Allocate returns size zeroed bytes, or nil for size <= 0.
	Allocate(size int) (unsafe.Pointer, error)
	// Reallocate grows or shrinks a block, preserving the common prefix. The
	// block may move; p is invalid afterwards unless it is returned again.
	Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, error)
	// Free releases a block. size must equal the size it was allocated with.
	Free(p unsafe.Pointer, size int)
	// Name identifies the allocator in logs.
	Name() string
}

// Option configures an allocator.
type Option func(*options)

type options struct {
	acquirer MemoryAcquirer
	pattern  mmap.AccessPattern
}

// WithMemoryAcquirer sets the memory acquirer for the allocator.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = acquirer
	}
}

// WithAccessPattern sets the kernel hint for blocks from Mmap. Heap ignores it.
func WithAccessPattern(p mmap.AccessPattern) Option {
	return func(o *options) {
		o.pattern = p
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AllocError reports a failed allocation of Requested bytes.
type AllocError struct {
	Requested int
	cause     error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("alloc: allocating %d bytes: %v", e.Requested, e.cause)
}

func (e *AllocError) Unwrap() []error { return []error{ErrAllocationFailed, e.cause} }

func acquire(a MemoryAcquirer, size int) error {
	if a == nil {
		return nil
	}
	if err := a.AcquireMemory(int64(size)); err != nil {
		return &AllocError{Requested: size, cause: err}
	}
	return nil
}

func release(a MemoryAcquirer, size int) {
	if a != nil {
		a.ReleaseMemory(int64(size))
	}
}

// roundWords rounds size up to a whole number of uint64 words.
func roundWords(size int) int {
	return (size + 7) &^ 7
}

func bytesAt(p unsafe.Pointer, n int) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// move copies the common prefix of two blocks.
func move(dst, src unsafe.Pointer, oldSize, newSize int) {
	n := min(oldSize, newSize)
	copy(bytesAt(dst, n), bytesAt(src, n))
}
