//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// osMapAnon commits demand-paged memory; pages are backed on first touch.
func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	release := func([]byte) error {
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}
	return data, release, nil
}

// osAdvise is a no-op; Windows has no madvise equivalent.
func osAdvise([]byte, AccessPattern) error {
	return nil
}
