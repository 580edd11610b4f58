//go:build !linux

package mmio

import "fmt"

// DevMem requires a Linux /dev/mem. On other platforms it exists only so
// that code referring to it still compiles; MapRegion always fails.
type DevMem struct{}

// MapRegion is unsupported on this platform.
func MapRegion(base uint64, size int) (*DevMem, error) {
	return nil, fmt.Errorf("mmio: physical memory mapping is not supported on this platform")
}

// Close implements io.Closer.
func (d *DevMem) Close() error { return nil }

// Read32 implements Region.
func (d *DevMem) Read32(off uintptr) uint32 { panic("mmio: DevMem not supported on this platform") }

// Write32 implements Region.
func (d *DevMem) Write32(off uintptr, v uint32) {
	panic("mmio: DevMem not supported on this platform")
}

// Read128 implements Region.
func (d *DevMem) Read128(off uintptr) Word { panic("mmio: DevMem not supported on this platform") }

// Write128 implements Region.
func (d *DevMem) Write128(off uintptr, w Word) {
	panic("mmio: DevMem not supported on this platform")
}
