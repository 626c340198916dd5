// Package mmap provides anonymous memory mappings for off-heap element
// storage.
//
// # Overview
//
// MapAnon obtains read-write memory directly from the operating system,
// outside the Go garbage collector's control. The Mmap allocator in
// internal/alloc uses it so that very large bit buffers neither inflate the
// GC's heap target nor get scanned.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zero-filled, page aligned
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2)
//     for access hints
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT (advice is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must ensure
// no goroutine touches Bytes() after Close returns.
package mmap
