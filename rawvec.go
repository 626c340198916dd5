package bitvec

import (
	"context"
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/region"
	"github.com/hupe1980/bitvec/store"
)

// RawVec is an owned, growable element vector over a buffer's allocation.
// It only exists for the duration of a WithRawElements call.
type RawVec[T store.Element] struct {
	ptr    unsafe.Pointer
	len    int
	cap    int
	opts   *options
	logger *Logger
}

// maxElements is the element count beyond which the bit length could no
// longer be described by a region handle.
func maxElements[T store.Element]() int {
	return region.MaxBits/int(store.Width[T]()) + 1
}

// Len returns the number of initialized elements.
func (v *RawVec[T]) Len() int { return v.len }

// Cap returns the number of allocated elements.
func (v *RawVec[T]) Cap() int { return v.cap }

// Slice returns the initialized elements.
func (v *RawVec[T]) Slice() []T {
	if v.ptr == nil || v.len == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.ptr), v.len)
}

// Reserve ensures room for at least additional more elements. It panics with
// an *AllocError if the allocator fails.
func (v *RawVec[T]) Reserve(additional int) {
	if err := v.TryReserve(additional); err != nil {
		panic(err)
	}
}

// TryReserve is Reserve returning the allocation error instead of panicking.
// Capacity grows by at least doubling.
func (v *RawVec[T]) TryReserve(additional int) error {
	if additional < 0 {
		panic(fmt.Sprintf("bitvec: negative reserve %d", additional))
	}
	need, ok := conv.AddInt(v.len, additional)
	if !ok || need > maxElements[T]() {
		return &AllocError{
			Requested: need,
			cause:     fmt.Errorf("%w: %d + %d elements", ErrCapacityOverflow, v.len, additional),
		}
	}
	if need <= v.cap {
		return nil
	}
	return v.realloc(min(max(need, 2*v.cap), maxElements[T]()))
}

// Push appends one element.
func (v *RawVec[T]) Push(x T) {
	v.Reserve(1)
	*(*T)(unsafe.Add(v.ptr, uintptr(v.len)*store.Size[T]())) = x
	v.len++
}

// Extend appends xs.
func (v *RawVec[T]) Extend(xs ...T) {
	v.Reserve(len(xs))
	for _, x := range xs {
		*(*T)(unsafe.Add(v.ptr, uintptr(v.len)*store.Size[T]())) = x
		v.len++
	}
}

// Truncate shortens the vector to n elements. It does nothing if n >= Len.
func (v *RawVec[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bitvec: negative length %d", n))
	}
	if n < v.len {
		v.len = n
	}
}

// realloc moves the vector to an allocation of newCap elements, rounded up to
// whole 8-byte words.
func (v *RawVec[T]) realloc(newCap int) error {
	size := store.Size[T]()
	bytes, err := conv.ByteSize(newCap, size)
	if err == nil && bytes > math.MaxInt-7 {
		err = fmt.Errorf("%d bytes", bytes)
	}
	if err != nil {
		return &AllocError{Requested: newCap, cause: fmt.Errorf("%w: %w", ErrCapacityOverflow, err)}
	}
	bytes = (bytes + 7) &^ 7

	ctx := context.Background()
	p, err := v.opts.allocator.Reallocate(v.ptr, v.cap*int(size), bytes)
	v.opts.metricsCollector.RecordAlloc(bytes, err)
	if err != nil {
		err = translateError(err, newCap)
		v.logger.LogGrow(ctx, v.cap, newCap, err)
		return err
	}

	grown := bytes / int(size)
	v.logger.LogGrow(ctx, v.cap, grown, nil)
	v.opts.metricsCollector.RecordGrow(v.cap, grown)

	v.ptr = p
	v.cap = grown
	v.len = min(v.len, grown)
	return nil
}
