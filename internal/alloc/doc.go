// Package alloc provides the host allocators behind bit buffers.
//
// An Allocator hands out zeroed memory blocks in bytes, aligned to 8 bytes,
// and takes them back with the same size they were allocated with. Buffers
// convert between element capacity and bytes themselves.
//
// Two implementations exist:
//
//   - Heap: Go-heap memory backed by []uint64. Free only returns the memory
//     budget; the garbage collector reclaims the block once unreferenced.
//   - Mmap: anonymous mappings outside the Go heap, released eagerly on Free.
//
// Both report every allocation to an optional MemoryAcquirer (in practice a
// resource.Controller), which can refuse it with an error.
package alloc
