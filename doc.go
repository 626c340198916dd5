// Package bitvec provides growable, bit-addressable buffers over unsigned
// integer storage elements.
//
// A Buffer[T] owns an allocation of T elements (uint8, uint16, uint32 or
// uint64) and a region handle describing its live bits: a base element, a
// head offset inside that element, and a length in bits. The head offset lets
// a buffer copy an unaligned region without shifting it; ForceAlign moves the
// bits down when alignment matters.
//
// # Quick Start
//
//	buf := bitvec.Repeat[uint64](false, 100)
//	buf.Set(3, true)
//	buf.Push(true)
//	fmt.Println(buf.Len(), buf.Get(3)) // 101 true
//
// # Regions and Aliasing
//
// Region and Slice return handles from package region. Splitting a handle at
// an arbitrary bit yields two halves tagged store.Aliased, because both may
// touch the element the split fell in; writes through aliased handles are
// atomic. Splits on element boundaries can keep the exclusive tag via
// SplitAligned. Parallel uses this to hand chunks of one buffer to several
// goroutines:
//
//	err := buf.Parallel(ctx, 4, func(ctx context.Context, off int, c region.Handle[uint64, store.Aliased]) error {
//	    for i := range c.Len() {
//	        c.Set(buf.Order(), i, (off+i)%2 == 0)
//	    }
//	    return nil
//	})
//
// # Memory
//
// Buffers allocate through an Allocator. The default allocates from the Go
// heap; WithOffHeap uses anonymous memory mappings. WithMemoryLimit and
// WithResourceController bound the bytes allocated. Growth amortizes by
// doubling. Reserve and the other growing operations panic on allocation
// failure, the way appending to a slice does; TryReserve returns the error.
//
// IntoRawParts and FromRawParts move an allocation out of and back into a
// buffer. WithRawElements lends it to a function as an element vector.
//
// # Dead Bits
//
// Bits of an allocated element that lie outside the live range have no
// specified value. FillElements, ForceAlign and SetLen may leave anything
// there.
package bitvec
