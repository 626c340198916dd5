package alloc

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/hupe1980/bitvec/internal/mmap"
)

// Mmap allocates anonymous mappings outside the Go heap. Blocks must be
// returned with Free; the garbage collector does not reclaim them.
type Mmap struct {
	opts options

	mu   sync.Mutex
	live map[uintptr]*mmap.Mapping
}

// NewMmap creates an off-heap allocator.
func NewMmap(opts ...Option) *Mmap {
	return &Mmap{
		opts: applyOptions(opts),
		live: make(map[uintptr]*mmap.Mapping),
	}
}

// Name implements Allocator.
func (m *Mmap) Name() string { return "mmap" }

// Allocate implements Allocator.
func (m *Mmap) Allocate(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, nil
	}
	size = roundWords(size)
	if err := acquire(m.opts.acquirer, size); err != nil {
		return nil, err
	}

	mapping, err := mmap.MapAnon(size)
	if err != nil {
		release(m.opts.acquirer, size)
		return nil, &AllocError{Requested: size, cause: err}
	}

	if m.opts.pattern != mmap.AccessDefault {
		// Advice is a hint; a refusal leaves the mapping usable.
		_ = mapping.Advise(m.opts.pattern)
	}

	p := unsafe.Pointer(&mapping.Bytes()[0])
	m.mu.Lock()
	m.live[uintptr(p)] = mapping
	m.mu.Unlock()
	return p, nil
}

// Reallocate implements Allocator.
func (m *Mmap) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, error) {
	np, err := m.Allocate(newSize)
	if err != nil {
		return nil, err
	}
	move(np, p, oldSize, newSize)
	m.Free(p, oldSize)
	return np, nil
}

// Free implements Allocator.
func (m *Mmap) Free(p unsafe.Pointer, size int) {
	if p == nil {
		return
	}

	m.mu.Lock()
	mapping, ok := m.live[uintptr(p)]
	delete(m.live, uintptr(p))
	m.mu.Unlock()

	if !ok {
		panic(fmt.Sprintf("alloc: free of unknown block %p", p))
	}
	if mapping.Size() != roundWords(size) {
		panic(fmt.Sprintf("alloc: free of %d bytes, block holds %d", size, mapping.Size()))
	}
	_ = mapping.Close()
	release(m.opts.acquirer, mapping.Size())
}

// Live returns the number of blocks not yet freed.
func (m *Mmap) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}
