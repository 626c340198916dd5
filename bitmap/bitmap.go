package bitmap

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/bitrange"
	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/region"
	"github.com/hupe1980/bitvec/store"
)

const batchSize = 1024

// ToRoaring returns a bitmap holding the index of every set bit of src.
// Regions longer than 2^32 bits cannot be represented.
func ToRoaring(o order.Order, src region.Bits) (*roaring.Bitmap, error) {
	n := src.Len()
	if uint64(n) > math.MaxUint32+1 {
		return nil, fmt.Errorf("bitmap: %d bits exceed the 32-bit index space", n)
	}

	rb := roaring.New()
	batch := make([]uint32, 0, batchSize)
	for i := range n {
		if !src.Get(o, i) {
			continue
		}
		idx, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		batch = append(batch, idx)
		if len(batch) == batchSize {
			rb.AddMany(batch)
			batch = batch[:0]
		}
	}
	rb.AddMany(batch)
	return rb, nil
}

// FromRoaring returns an n-bit buffer with exactly the bits of rb set, in
// the bit order given by the options. It fails with a *bitrange.OutOfBoundsError if rb holds an index >= n.
func FromRoaring[T store.Element](rb *roaring.Bitmap, n int, optFns ...bitvec.Option) (*bitvec.Buffer[T], error) {
	if err := bitrange.Validate(bitrange.Range{Start: 0, End: n}, region.MaxBits); err != nil {
		return nil, err
	}
	if !rb.IsEmpty() {
		last := int(rb.Maximum())
		if err := bitrange.Validate(bitrange.Range{Start: last, End: last + 1}, n); err != nil {
			return nil, err
		}
	}

	buf := bitvec.Repeat[T](false, n, optFns...)
	it := rb.Iterator()
	for it.HasNext() {
		buf.Set(int(it.Next()), true)
	}
	return buf, nil
}

// ToBitSet returns a bit set of length src.Len() with the bits of src.
func ToBitSet(o order.Order, src region.Bits) *bitset.BitSet {
	n := src.Len()
	bs := bitset.New(uint(n))
	for i := range n {
		if src.Get(o, i) {
			bs.Set(uint(i))
		}
	}
	return bs
}

// FromBitSet returns a buffer of bs.Len() bits with the bits of bs.
func FromBitSet[T store.Element](bs *bitset.BitSet, optFns ...bitvec.Option) (*bitvec.Buffer[T], error) {
	n, err := conv.Uint64ToInt(uint64(bs.Len()))
	if err != nil {
		return nil, err
	}
	if n > region.MaxBits {
		return nil, bitrange.Validate(bitrange.Range{Start: 0, End: n}, region.MaxBits)
	}

	buf := bitvec.Repeat[T](false, n, optFns...)
	for i, ok := bs.NextSet(0); ok && i < bs.Len(); i, ok = bs.NextSet(i + 1) {
		buf.Set(int(i), true)
	}
	return buf, nil
}
