// Package conv provides overflow-checked integer arithmetic and conversions
// for bit and element counts.
//
// Bit counts are plain ints. Converting them to element counts, byte sizes,
// or the uint32 indices used by roaring bitmaps can overflow; these helpers
// report that instead of wrapping.
package conv
