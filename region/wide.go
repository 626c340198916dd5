package region

import (
	"unsafe"

	"github.com/hupe1980/bitvec/store"
)

// Wide is the two-word encoding of a handle.
type Wide struct {
	Ptr unsafe.Pointer
	Len uintptr
}

// Wide encodes h. The base must be aligned to the element size, which holds
// for every allocation bitvec makes and for Go-allocated element slices on
// 64-bit platforms.
func (h Handle[T, M]) Wide() Wide {
	size := store.Size[T]()
	if uintptr(unsafe.Pointer(h.base))&(size-1) != 0 {
		panic("region: base is not aligned to its element size")
	}
	return Wide{
		Ptr: unsafe.Add(unsafe.Pointer(h.base), int(h.head>>3)),
		Len: uintptr(h.bits)<<3 | uintptr(h.head&7),
	}
}

// FromWide decodes a handle produced by Handle.Wide.
func FromWide[T store.Element, M store.Mode](w Wide) Handle[T, M] {
	size := store.Size[T]()
	off := uintptr(w.Ptr) & (size - 1)
	return Handle[T, M]{
		base: (*T)(unsafe.Add(w.Ptr, -int(off))),
		head: uint8(off<<3) | uint8(w.Len&7),
		bits: int(w.Len >> 3),
	}
}
