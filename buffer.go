package bitvec

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/hupe1980/bitvec/bitrange"
	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/region"
	"github.com/hupe1980/bitvec/store"
)

// Buffer is a growable sequence of bits stored in elements of type T.
//
// The buffer exclusively owns its allocation. Handles obtained from Region
// or Slice are invalidated by any operation that may grow the buffer and by
// Release or IntoRawParts.
type Buffer[T store.Element] struct {
	region   region.Handle[T, store.Exclusive]
	ptr      unsafe.Pointer
	capacity int
	opts     *options
	logger   *Logger
}

// RawParts is the allocation state handed out by IntoRawParts.
type RawParts[T store.Element] struct {
	Base     *T
	Head     uint
	Len      int
	Elements int
	Capacity int
}

// New returns an empty buffer. It does not allocate.
func New[T store.Element](optFns ...Option) *Buffer[T] {
	return newBuffer[T](applyOptions(optFns))
}

func newBuffer[T store.Element](o *options) *Buffer[T] {
	return &Buffer[T]{
		region: region.Empty[T, store.Exclusive](),
		opts:   o,
		logger: o.logger.WithElementWidth(store.Width[T]()),
	}
}

// WithCapacity returns an empty buffer able to hold at least bits bits
// without reallocating. It panics if the allocation fails.
func WithCapacity[T store.Element](bits int, optFns ...Option) *Buffer[T] {
	b := New[T](optFns...)
	b.Reserve(bits)
	return b
}

// Repeat returns a buffer of n bits, all equal to bit.
func Repeat[T store.Element](bit bool, n int, optFns ...Option) *Buffer[T] {
	b := WithCapacity[T](n, optFns...)
	b.SetLen(n)
	b.FillElements(store.Fill[T](bit))
	return b
}

// FromRegion copies src into a new buffer. The copy keeps the head offset of
// src, so the elements are transferred unshifted.
func FromRegion[T store.Element](src region.Source[T], optFns ...Option) *Buffer[T] {
	return fromRegion(src, applyOptions(optFns))
}

func fromRegion[T store.Element](src region.Source[T], o *options) *Buffer[T] {
	b := newBuffer[T](o)
	n := src.Elements()
	b.WithRawElements(func(v *RawVec[T]) {
		v.Reserve(n)
		for k := range n {
			v.Push(src.Load(k))
		}
	})
	b.region = region.FromRaw[T, store.Exclusive](b.base(), src.Head(), src.Len())
	return b
}

// FromRawParts rebuilds a buffer from the parts returned by IntoRawParts.
// The options must name the allocator that produced the allocation.
func FromRawParts[T store.Element](p RawParts[T], optFns ...Option) *Buffer[T] {
	if p.Capacity < 0 {
		panic(fmt.Sprintf("bitvec: negative capacity %d", p.Capacity))
	}
	if p.Base == nil && p.Capacity > 0 {
		panic("bitvec: nil base with non-zero capacity")
	}
	if p.Head >= store.Width[T]() {
		panic(fmt.Sprintf("bitvec: head %d out of range for %d-bit element", p.Head, store.Width[T]()))
	}

	b := New[T](optFns...)
	b.ptr = unsafe.Pointer(p.Base)
	b.capacity = p.Capacity
	if p.Base == nil {
		bitrange.Assert(bitrange.Range{Start: 0, End: p.Len}, 0)
		return b
	}
	bitrange.Assert(bitrange.Range{Start: 0, End: p.Len}, b.capacityBits(p.Head))
	b.region = region.FromRaw[T, store.Exclusive](p.Base, p.Head, p.Len)
	return b
}

func (b *Buffer[T]) base() *T {
	return (*T)(b.ptr)
}

// allocation returns every allocated element, live or not.
func (b *Buffer[T]) allocation() []T {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*T)(b.ptr), b.capacity)
}

func (b *Buffer[T]) capacityBits(head uint) int {
	bits, ok := conv.MulInt(b.capacity, int(store.Width[T]()))
	if !ok {
		bits = region.MaxBits
	}
	return max(min(bits, region.MaxBits)-int(head), 0)
}

// Len returns the number of live bits.
func (b *Buffer[T]) Len() int { return b.region.Len() }

// IsEmpty reports whether the buffer holds no bits.
func (b *Buffer[T]) IsEmpty() bool { return b.region.IsEmpty() }

// Capacity returns the number of bits the buffer can hold without
// reallocating, counted from its head offset.
func (b *Buffer[T]) Capacity() int { return b.capacityBits(b.region.Head()) }

// Elements returns the number of elements touched by the live bits.
func (b *Buffer[T]) Elements() int {
	if b.ptr == nil {
		return 0
	}
	return b.region.Elements()
}

// AsElements returns the elements touched by the live bits. Dead bits in the
// first and last element are unspecified.
func (b *Buffer[T]) AsElements() []T {
	if b.ptr == nil {
		return nil
	}
	return b.region.Slice()
}

// Order returns the bit order used by the buffer.
func (b *Buffer[T]) Order() order.Order { return b.opts.order }

// Region returns a handle over the live bits.
func (b *Buffer[T]) Region() region.Handle[T, store.Exclusive] { return b.region }

// Slice returns a handle over the live bits selected by bounds.
func (b *Buffer[T]) Slice(bounds bitrange.Bounds) (region.Handle[T, store.Exclusive], error) {
	return b.region.Sub(bounds)
}

// Get returns bit i. It panics if i is out of bounds.
func (b *Buffer[T]) Get(i int) bool { return b.region.Get(b.opts.order, i) }

// Set writes bit i. It panics if i is out of bounds.
func (b *Buffer[T]) Set(i int, v bool) { b.region.Set(b.opts.order, i, v) }

// Push appends one bit.
func (b *Buffer[T]) Push(v bool) {
	n := b.region.Len()
	b.Reserve(1)
	b.region.SetLen(n + 1)
	b.region.Set(b.opts.order, n, v)
}

// Pop removes and returns the last bit. ok is false if the buffer is empty.
func (b *Buffer[T]) Pop() (v bool, ok bool) {
	n := b.region.Len()
	if n == 0 {
		return false, false
	}
	v = b.region.Get(b.opts.order, n-1)
	b.region.SetLen(n - 1)
	return v, true
}

// Truncate shortens the buffer to n bits. It panics if n > Len.
func (b *Buffer[T]) Truncate(n int) {
	bitrange.Assert(bitrange.Range{Start: 0, End: n}, b.region.Len())
	b.region.SetLen(n)
}

// Clear removes every bit, keeping the allocation.
func (b *Buffer[T]) Clear() { b.region.SetLen(0) }

// Reserve ensures the buffer can hold at least Len()+additional bits. Live
// bits are preserved; handles previously derived from the buffer become
// invalid if the allocation moves. It panics with an *AllocError if the
// allocation fails.
func (b *Buffer[T]) Reserve(additional int) {
	if err := b.TryReserve(additional); err != nil {
		panic(err)
	}
}

// TryReserve is Reserve returning the allocation error instead of panicking.
func (b *Buffer[T]) TryReserve(additional int) error {
	if additional < 0 {
		panic(fmt.Sprintf("bitvec: negative reserve %d", additional))
	}
	head := int(b.region.Head())
	need, ok := conv.AddInt(head+b.region.Len(), additional)
	if !ok || need > region.MaxBits {
		return &AllocError{
			Requested: maxElements[T](),
			cause:     fmt.Errorf("%w: %d + %d bits", ErrCapacityOverflow, b.region.Len(), additional),
		}
	}

	elems := conv.ElementsFor(need, store.Width[T]())
	if elems <= b.capacity {
		return nil
	}

	var err error
	b.WithRawElements(func(v *RawVec[T]) {
		err = v.TryReserve(elems - v.Len())
	})
	return err
}

// SetLen sets the live length to n without initializing new bits. Bits that
// become live hold whatever the allocation held before. It panics if n
// exceeds Capacity.
func (b *Buffer[T]) SetLen(n int) {
	bitrange.Assert(bitrange.Range{Start: 0, End: n}, b.Capacity())
	b.region.SetLen(n)
}

// FillElements overwrites every allocated element with v, including elements
// and bits outside the live range.
func (b *Buffer[T]) FillElements(v T) {
	a := b.allocation()
	for i := range a {
		a[i] = v
	}
}

// ExtendFromRegion appends the bits of src. src must not borrow from b.
func (b *Buffer[T]) ExtendFromRegion(src region.Source[T]) {
	n := src.Len()
	if n == 0 {
		return
	}
	old := b.region.Len()
	b.Reserve(n)
	b.region.SetLen(old + n)
	b.region.CopyFrom(b.opts.order, old, src)
}

// ForceAlign shifts the live bits down so the head offset becomes zero. Bits
// past the live range are left unspecified. Calling it on an aligned buffer
// does nothing.
func (b *Buffer[T]) ForceAlign() {
	head := b.region.Head()
	if head == 0 {
		return
	}
	n := b.region.Len()
	full := region.FromRaw[T, store.Exclusive](b.region.Base(), 0, int(head)+n)
	full.CopyWithin(b.opts.order, bitrange.Range{Start: int(head), End: int(head) + n}, 0)
	b.region.SetHead(0)

	b.logger.LogAlign(context.Background(), head, n)
	b.opts.metricsCollector.RecordAlign(n)
}

// IntoRawParts hands the allocation to the caller and leaves b empty. The
// parts must be passed back to FromRawParts, or released with the same
// allocator, exactly once.
func (b *Buffer[T]) IntoRawParts() RawParts[T] {
	p := RawParts[T]{
		Base:     b.base(),
		Head:     b.region.Head(),
		Len:      b.region.Len(),
		Elements: b.Elements(),
		Capacity: b.capacity,
	}
	b.ptr = nil
	b.capacity = 0
	b.region = region.Empty[T, store.Exclusive]()
	return p
}

// WithRawElements moves the allocation into a RawVec holding the touched
// elements, runs fn, and moves the allocation back. fn may grow or shrink the
// vector; the live length is clipped to the elements that remain. fn must
// not keep v or any slice of it after returning.
func (b *Buffer[T]) WithRawElements(fn func(v *RawVec[T])) {
	v := &RawVec[T]{
		ptr:    b.ptr,
		len:    b.Elements(),
		cap:    b.capacity,
		opts:   b.opts,
		logger: b.logger,
	}
	b.ptr = nil
	b.capacity = 0

	defer b.reclaim(v)
	fn(v)
}

func (b *Buffer[T]) reclaim(v *RawVec[T]) {
	b.ptr = v.ptr
	b.capacity = v.cap
	avail := v.len * int(store.Width[T]())
	v.ptr, v.len, v.cap = nil, 0, 0

	head := b.region.Head()
	n := b.region.Len()
	if int(head)+n > avail {
		if avail <= int(head) {
			head, n = 0, 0
		} else {
			n = avail - int(head)
		}
	}
	b.region = region.FromRaw[T, store.Exclusive](b.base(), head, n)
}

// Clone returns a copy of b sharing its options.
func (b *Buffer[T]) Clone() *Buffer[T] {
	if b.ptr == nil {
		return newBuffer[T](b.opts)
	}
	return fromRegion[T](b.region, b.opts)
}

// Release returns the allocation to the allocator and leaves b empty.
func (b *Buffer[T]) Release() {
	if b.ptr == nil {
		return
	}
	bytes := b.capacity * int(store.Size[T]())
	b.opts.allocator.Free(b.ptr, bytes)
	b.opts.metricsCollector.RecordFree(bytes)
	b.logger.LogRelease(context.Background(), b.capacity)

	b.ptr = nil
	b.capacity = 0
	b.region = region.Empty[T, store.Exclusive]()
}

func (b *Buffer[T]) String() string {
	return fmt.Sprintf("bitvec.Buffer[%d-bit](len=%d cap=%d head=%d)",
		store.Width[T](), b.region.Len(), b.Capacity(), b.region.Head())
}
