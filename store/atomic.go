package store

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Atomic is a synchronized view of one element. It does not change the
// element's address; it only changes how the element is accessed.
type Atomic[T Element] struct {
	p *T
}

// Access reinterprets p as a synchronized view.
func Access[T Element](p *T) Atomic[T] {
	return Atomic[T]{p: p}
}

// Ptr returns the underlying element address.
func (a Atomic[T]) Ptr() *T { return a.p }

// lane locates a sub-word element inside its aligned 32-bit word.
func (a Atomic[T]) lane() (word *uint32, shift uint, mask uint32) {
	size := uint(unsafe.Sizeof(*a.p))
	off := uint(uintptr(unsafe.Pointer(a.p)) & 3)
	word = (*uint32)(unsafe.Add(unsafe.Pointer(a.p), -int(off)))
	if cpu.IsBigEndian {
		shift = (4 - off - size) * 8
	} else {
		shift = off * 8
	}
	mask = uint32(1)<<(size*8) - 1
	return word, shift, mask
}

// Load reads the element atomically.
func (a Atomic[T]) Load() T {
	switch unsafe.Sizeof(*a.p) {
	case 8:
		return T(atomic.LoadUint64((*uint64)(unsafe.Pointer(a.p))))
	case 4:
		return T(atomic.LoadUint32((*uint32)(unsafe.Pointer(a.p))))
	default:
		w, shift, mask := a.lane()
		return T((atomic.LoadUint32(w) >> shift) & mask)
	}
}

// Store writes the element atomically.
func (a Atomic[T]) Store(v T) {
	switch unsafe.Sizeof(*a.p) {
	case 8:
		atomic.StoreUint64((*uint64)(unsafe.Pointer(a.p)), uint64(v))
	case 4:
		atomic.StoreUint32((*uint32)(unsafe.Pointer(a.p)), uint32(v))
	default:
		a.update(func(T) T { return v })
	}
}

// Or sets the bits of mask and returns the previous value.
func (a Atomic[T]) Or(mask T) T {
	switch unsafe.Sizeof(*a.p) {
	case 8:
		return T(atomic.OrUint64((*uint64)(unsafe.Pointer(a.p)), uint64(mask)))
	case 4:
		return T(atomic.OrUint32((*uint32)(unsafe.Pointer(a.p)), uint32(mask)))
	default:
		return a.update(func(old T) T { return old | mask })
	}
}

// And keeps only the bits of mask and returns the previous value.
func (a Atomic[T]) And(mask T) T {
	switch unsafe.Sizeof(*a.p) {
	case 8:
		return T(atomic.AndUint64((*uint64)(unsafe.Pointer(a.p)), uint64(mask)))
	case 4:
		return T(atomic.AndUint32((*uint32)(unsafe.Pointer(a.p)), uint32(mask)))
	default:
		return a.update(func(old T) T { return old & mask })
	}
}

// CompareAndSwap replaces the element with val if it currently holds old.
func (a Atomic[T]) CompareAndSwap(old, val T) bool {
	switch unsafe.Sizeof(*a.p) {
	case 8:
		return atomic.CompareAndSwapUint64((*uint64)(unsafe.Pointer(a.p)), uint64(old), uint64(val))
	case 4:
		return atomic.CompareAndSwapUint32((*uint32)(unsafe.Pointer(a.p)), uint32(old), uint32(val))
	}

	w, shift, mask := a.lane()
	for {
		cur := atomic.LoadUint32(w)
		if T((cur>>shift)&mask) != old {
			return false
		}
		next := cur&^(mask<<shift) | (uint32(val)&mask)<<shift
		if atomic.CompareAndSwapUint32(w, cur, next) {
			return true
		}
	}
}

// update applies fn to a sub-word element with a CAS loop on its enclosing
// word, leaving the neighboring lanes untouched. It returns the old value.
func (a Atomic[T]) update(fn func(T) T) T {
	w, shift, mask := a.lane()
	for {
		cur := atomic.LoadUint32(w)
		old := T((cur >> shift) & mask)
		next := cur&^(mask<<shift) | (uint32(fn(old))&mask)<<shift
		if atomic.CompareAndSwapUint32(w, cur, next) {
			return old
		}
	}
}
