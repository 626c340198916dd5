package region

import (
	"unsafe"

	"github.com/hupe1980/bitvec/bitrange"
	"github.com/hupe1980/bitvec/store"
)

// Sub returns the sub-region selected by b, validated against Len.
func (h Handle[T, M]) Sub(b bitrange.Bounds) (Handle[T, M], error) {
	r, err := bitrange.Resolve(b, h.bits)
	if err != nil {
		return Handle[T, M]{}, err
	}
	return h.sub(r.Start, r.Len()), nil
}

// sub assumes start+n <= h.bits.
func (h Handle[T, M]) sub(start, n int) Handle[T, M] {
	k, bit := h.locate(start)
	if n == 0 && k >= h.Elements() {
		// Advancing base past the last element would leave the allocation.
		return Empty[T, M]()
	}
	return Handle[T, M]{base: h.elem(k), head: uint8(bit), bits: n}
}

// SplitAt divides h at bit at. Both halves are tagged Aliased, since the
// split may fall inside an element that both halves then touch.
func (h Handle[T, M]) SplitAt(at int) (Handle[T, store.Aliased], Handle[T, store.Aliased]) {
	bitrange.Assert(bitrange.Range{Start: 0, End: at}, h.bits)
	left, right := h.sub(0, at), h.sub(at, h.bits-at)
	return retag[store.Aliased](left), retag[store.Aliased](right)
}

// SplitAligned divides h at bit at when that point lies on an element
// boundary (or at either end), keeping mode M. ok is false when the split
// would share an element between the halves.
func (h Handle[T, M]) SplitAligned(at int) (left, right Handle[T, M], ok bool) {
	bitrange.Assert(bitrange.Range{Start: 0, End: at}, h.bits)
	_, bit := h.locate(at)
	if at != 0 && at != h.bits && bit != 0 {
		return Handle[T, M]{}, Handle[T, M]{}, false
	}
	return h.sub(0, at), h.sub(at, h.bits-at), true
}

// SharedElements counts the storage elements touched by both a and b.
func SharedElements[T store.Element, MA, MB store.Mode](a Handle[T, MA], b Handle[T, MB]) int {
	size := store.Size[T]()
	aStart := uintptr(unsafe.Pointer(a.base))
	aEnd := aStart + uintptr(a.Elements())*size
	bStart := uintptr(unsafe.Pointer(b.base))
	bEnd := bStart + uintptr(b.Elements())*size

	lo, hi := max(aStart, bStart), min(aEnd, bEnd)
	if hi <= lo {
		return 0
	}
	return int((hi - lo) / size)
}

// MarkAliased retags an exclusive handle as aliased.
//
// Precondition: the caller is about to let another live handle reach at
// least one of h's elements.
func MarkAliased[T store.Element](h Handle[T, store.Exclusive]) Handle[T, store.Aliased] {
	return retag[store.Aliased](h)
}

// RemoveAlias retags an aliased handle as exclusive.
//
// Precondition: no other live handle reaches any of h's elements.
func RemoveAlias[T store.Element](h Handle[T, store.Aliased]) Handle[T, store.Exclusive] {
	return retag[store.Exclusive](h)
}

func retag[N store.Mode, T store.Element, M store.Mode](h Handle[T, M]) Handle[T, N] {
	return Handle[T, N]{base: h.base, head: h.head, bits: h.bits}
}
