package store

import (
	"math/bits"
	"unsafe"
)

// Element is the set of types usable as bit storage.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Size returns the size of T in bytes.
func Size[T Element]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

// Width returns the number of bits in T.
func Width[T Element]() uint {
	return uint(Size[T]()) * 8
}

// IndexBits returns log2(Width[T]()), the number of bits needed to address a
// bit inside one element.
func IndexBits[T Element]() uint {
	return uint(bits.TrailingZeros(Width[T]()))
}

// All returns the element value with every bit set.
func All[T Element]() T {
	var z T
	return ^z
}

// Fill returns All[T]() when bit is true and zero otherwise.
func Fill[T Element](bit bool) T {
	if bit {
		return All[T]()
	}
	return 0
}
