// Package region implements the bit-region handle: a (base, head, len)
// descriptor naming a run of live bits inside ordinary memory.
//
// # Layout
//
//	 base ─┐
//	       ▼
//	┌────────────┬────────────┬────────────┐
//	│ elem 0     │ elem 1     │ elem 2     │
//	│   ░░░██████│████████████│█████░░░░░░░│
//	└────────────┴────────────┴────────────┘
//	    └head┘                      len bits of █
//
// head is the offset of the first live bit inside the element at base and is
// always smaller than the element width. Elements() counts every element the
// live bits touch, including partially-live edge elements.
//
// # Ownership
//
// A Handle never owns memory. Whoever owns the elements (a Buffer, a borrowed
// slice) must outlive it, and a handle taken from a Buffer is stale after the
// buffer reallocates or is released.
//
// # Aliasing
//
// Handles carry a store.Mode type parameter. SplitAt always yields Aliased
// halves because the split may fall inside an element. SplitAligned only
// succeeds on element boundaries and keeps the original mode, which is how
// callers derive the tag mechanically from where the split landed.
//
// # Wide References
//
// Wide packs a handle into two machine words, the same (data, len) pair that
// backs Go's native slice and string headers. The low three bits of Len hold
// the low bits of head and the remaining head bits are stored as a byte
// offset inside the first element. Conversion in either direction is pure
// arithmetic and never allocates.
package region
