package region

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/bitvec/bitrange"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
)

// MaxBits is the largest number of bits a handle can describe. Three bits of
// the wide length word are reserved for the head offset.
const MaxBits = math.MaxInt >> 3

// dangling backs empty handles so that base is never nil.
var dangling uint64

// Bits is the read surface shared by every handle regardless of element type.
type Bits interface {
	Len() int
	Get(o order.Order, i int) bool
}

// Source is a region that can be copied element by element.
type Source[T store.Element] interface {
	Bits
	Head() uint
	Elements() int
	Load(k int) T
}

// Handle describes len live bits starting head bits into the element at base.
type Handle[T store.Element, M store.Mode] struct {
	base *T
	head uint8
	bits int
}

// Empty returns a zero-length handle over the dangling sentinel.
func Empty[T store.Element, M store.Mode]() Handle[T, M] {
	return Handle[T, M]{base: (*T)(unsafe.Pointer(&dangling))}
}

// FromRaw builds a handle. The caller guarantees that base points to at
// least ceil((head+n)/width) valid elements.
func FromRaw[T store.Element, M store.Mode](base *T, head uint, n int) Handle[T, M] {
	if head >= store.Width[T]() {
		panic(fmt.Sprintf("region: head %d out of range for %d-bit element", head, store.Width[T]()))
	}
	if n < 0 || n > MaxBits {
		panic(fmt.Sprintf("region: length %d out of range [0, %d]", n, MaxBits))
	}
	if base == nil {
		if n != 0 {
			panic("region: nil base with live bits")
		}
		return Empty[T, M]()
	}
	return Handle[T, M]{base: base, head: uint8(head), bits: n}
}

// FromSlice returns an exclusive handle covering every bit of s.
func FromSlice[T store.Element](s []T) Handle[T, store.Exclusive] {
	if len(s) == 0 {
		return Empty[T, store.Exclusive]()
	}
	return FromRaw[T, store.Exclusive](&s[0], 0, len(s)*int(store.Width[T]()))
}

// Base returns the address of the first touched element.
func (h Handle[T, M]) Base() *T { return h.base }

// Head returns the offset of the first live bit.
func (h Handle[T, M]) Head() uint { return uint(h.head) }

// Len returns the number of live bits.
func (h Handle[T, M]) Len() int { return h.bits }

// IsEmpty reports whether the handle has no live bits.
func (h Handle[T, M]) IsEmpty() bool { return h.bits == 0 }

// Elements returns ceil((head+len)/width).
func (h Handle[T, M]) Elements() int {
	w := int(store.Width[T]())
	return (int(h.head) + h.bits + w - 1) >> store.IndexBits[T]()
}

// Slice returns the touched elements as a plain slice.
func (h Handle[T, M]) Slice() []T {
	n := h.Elements()
	if n == 0 {
		return nil
	}
	return unsafe.Slice(h.base, n)
}

// Rebase moves the handle to a new base address. head and len are kept.
func (h *Handle[T, M]) Rebase(base *T) {
	if base == nil {
		base = (*T)(unsafe.Pointer(&dangling))
	}
	h.base = base
}

// SetHead changes the start offset. The caller must already have moved the
// bit content to match.
func (h *Handle[T, M]) SetHead(head uint) {
	if head >= store.Width[T]() {
		panic(fmt.Sprintf("region: head %d out of range for %d-bit element", head, store.Width[T]()))
	}
	h.head = uint8(head)
}

// SetLen changes the number of live bits without touching memory.
func (h *Handle[T, M]) SetLen(n int) {
	if n < 0 || n > MaxBits {
		panic(fmt.Sprintf("region: length %d out of range [0, %d]", n, MaxBits))
	}
	h.bits = n
}

func (h Handle[T, M]) String() string {
	return fmt.Sprintf("region[%s](base=%p head=%d len=%d)", store.ModeName[M](), h.base, h.head, h.bits)
}

func (h Handle[T, M]) elem(k int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(h.base), uintptr(k)*store.Size[T]()))
}

func (h Handle[T, M]) ref(k int) store.Ref[T, M] {
	return store.RefOf[T, M](h.elem(k))
}

// locate returns the element index and in-element bit of live bit i.
func (h Handle[T, M]) locate(i int) (int, uint) {
	pos := int(h.head) + i
	return pos >> store.IndexBits[T](), uint(pos) & (store.Width[T]() - 1)
}

func mask[T store.Element](o order.Order, bit uint) T {
	return T(1) << o.Position(bit, store.Width[T]())
}

// Load reads element k of the touched elements.
func (h Handle[T, M]) Load(k int) T {
	bitrange.AssertIndex(k, h.Elements())
	return h.ref(k).Load()
}

// Get reads live bit i.
func (h Handle[T, M]) Get(o order.Order, i int) bool {
	bitrange.AssertIndex(i, h.bits)
	return h.get(o, i)
}

func (h Handle[T, M]) get(o order.Order, i int) bool {
	k, bit := h.locate(i)
	return h.ref(k).Load()&mask[T](o, bit) != 0
}

// Set writes live bit i.
func (h Handle[T, M]) Set(o order.Order, i int, v bool) {
	bitrange.AssertIndex(i, h.bits)
	h.set(o, i, v)
}

func (h Handle[T, M]) set(o order.Order, i int, v bool) {
	k, bit := h.locate(i)
	h.ref(k).Write(mask[T](o, bit), v)
}
