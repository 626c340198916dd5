// Package bitmap converts between bit regions and the compressed and dense
// bitmap types of github.com/RoaringBitmap/roaring and
// github.com/bits-and-blooms/bitset.
//
// Conversions go bit by bit through an order.Order, so the set bit indices
// are semantic positions, independent of storage layout.
package bitmap
