package alloc

import "unsafe"

// Heap allocates from the Go heap.
type Heap struct {
	opts options
}

// NewHeap creates a heap allocator.
func NewHeap(opts ...Option) *Heap {
	return &Heap{opts: applyOptions(opts)}
}

// Name implements Allocator.
func (h *Heap) Name() string { return "heap" }

// Allocate implements Allocator.
func (h *Heap) Allocate(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, nil
	}
	size = roundWords(size)
	if err := acquire(h.opts.acquirer, size); err != nil {
		return nil, err
	}
	words := make([]uint64, size/8)
	return unsafe.Pointer(&words[0]), nil
}

// Reallocate implements Allocator.
func (h *Heap) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, error) {
	if roundWords(oldSize) == roundWords(newSize) && p != nil {
		return p, nil
	}
	np, err := h.Allocate(newSize)
	if err != nil {
		return nil, err
	}
	move(np, p, oldSize, newSize)
	h.Free(p, oldSize)
	return np, nil
}

// Free implements Allocator.
func (h *Heap) Free(p unsafe.Pointer, size int) {
	if p == nil || size <= 0 {
		return
	}
	release(h.opts.acquirer, roundWords(size))
}
