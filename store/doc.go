// Package store defines the storage elements bit regions are built from and
// the type-level aliasing marker that governs how they may be mutated.
//
// # Elements
//
// An Element is one of the unsigned integer types uint8, uint16, uint32 or
// uint64 (or a named type over one of them). Regions address the bits of a
// run of elements.
//
// # Aliasing Modes
//
// Every reference to an element carries a Mode in its type:
//
//   - Exclusive: no other live region can reach the element. Reads and writes
//     are plain loads and stores.
//   - Aliased: another region may touch the same element concurrently, because
//     a split fell inside it. Every read-modify-write is synchronized, so
//     neighboring bit writes from two goroutines never clobber each other.
//
// The mode is never stored at runtime. Moving a reference between modes is
// done with the conversion functions in this package (MarkAliased,
// UnmarkAliased, AliasValue, RemoveAlias, LoadAliased). Each of them has an
// unchecked precondition documented on the function; violating it is a
// memory-level bug in the caller, not a reportable error.
//
// # Synchronized Access
//
// Access projects a plain element pointer onto Atomic, which exposes Load,
// Store, Or, And and CompareAndSwap. 32 and 64-bit elements map directly onto
// sync/atomic. 8 and 16-bit elements are updated with a CAS loop on the
// enclosing aligned 32-bit word, so their backing memory must be allocated in
// at least 4-byte aligned blocks (every bitvec allocator guarantees this).
package store
