package region

import (
	"github.com/hupe1980/bitvec/bitrange"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
)

// CopyWithin copies the bits of src to the range starting at dest. The
// ranges may overlap.
func (h Handle[T, M]) CopyWithin(o order.Order, src bitrange.Range, dest int) {
	bitrange.Assert(src, h.bits)
	n := src.Len()
	bitrange.Assert(bitrange.Range{Start: dest, End: dest + n}, h.bits)
	if n == 0 || src.Start == dest {
		return
	}

	if dest == 0 && h.head == 0 && h.alignDown(o, src.Start, n) {
		return
	}

	if dest < src.Start {
		for i := 0; i < n; i++ {
			h.set(o, dest+i, h.get(o, src.Start+i))
		}
		return
	}
	for i := n - 1; i >= 0; i-- {
		h.set(o, dest+i, h.get(o, src.Start+i))
	}
}

// CopyFrom copies every bit of src into h starting at dest.
func (h Handle[T, M]) CopyFrom(o order.Order, dest int, src Bits) {
	n := src.Len()
	bitrange.Assert(bitrange.Range{Start: dest, End: dest + n}, h.bits)
	for i := 0; i < n; i++ {
		h.set(o, dest+i, src.Get(o, i))
	}
}

// alignDown moves n bits starting at bit shift down to bit 0 one element at
// a time. It only handles exclusive handles in Lsb0 or Msb0 order, because
// it rewrites whole elements; it reports false when it did nothing.
func (h Handle[T, M]) alignDown(o order.Order, shift, n int) bool {
	if store.Synchronized[M]() {
		return false
	}
	var lsb bool
	switch o.(type) {
	case order.Lsb0, *order.Lsb0:
		lsb = true
	case order.Msb0, *order.Msb0:
		lsb = false
	default:
		return false
	}

	elems := h.Slice()
	w := store.Width[T]()
	q, r := shift>>store.IndexBits[T](), uint(shift)&(w-1)
	count := (n + int(w) - 1) >> store.IndexBits[T]()

	for k := 0; k < count; k++ {
		lo := elems[k+q]
		var hi T
		if k+q+1 < len(elems) {
			hi = elems[k+q+1]
		}

		v := lo
		if r != 0 {
			if lsb {
				v = lo>>r | hi<<(w-r)
			} else {
				v = lo<<r | hi>>(w-r)
			}
		}

		// Keep bits past the copied window in the final element.
		if rem := uint(n - k*int(w)); rem < w {
			var live T
			if lsb {
				live = T(1)<<rem - 1
			} else {
				live = ^(store.All[T]() >> rem)
			}
			v = elems[k]&^live | v&live
		}
		elems[k] = v
	}
	return true
}
