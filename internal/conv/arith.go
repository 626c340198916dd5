package conv

import (
	"fmt"
	"math"
)

// AddInt adds a and b, returning ok = false when the result would overflow int.
func AddInt(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulInt multiplies two non-negative ints, returning ok = false on overflow
// or negative input.
func MulInt(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// ElementsFor returns the number of width-bit elements needed to hold bits
// bits, i.e. ceil(bits/width).
func ElementsFor(bits int, width uint) int {
	if bits <= 0 {
		return 0
	}
	w := int(width)
	return bits/w + min(bits%w, 1)
}

// ByteSize returns elements*size, or an error if that overflows int.
func ByteSize(elements int, size uintptr) (int, error) {
	n, ok := MulInt(elements, int(size))
	if !ok {
		return 0, fmt.Errorf("integer overflow: %d elements of %d bytes", elements, size)
	}
	return n, nil
}
