//go:build linux

package mmio

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

const devMemPath = "/dev/mem"

// DevMem is a Region mapped over a physical address range through
// /dev/mem. It is the backend used against real hardware; the process
// needs CAP_SYS_RAWIO (in practice, root) to open the device.
//
// Loads and stores go through sync/atomic on the mapped memory so the
// compiler cannot elide, reorder, or merge them. The mapping is opened
// with O_SYNC, which Linux translates to an uncached mapping for
// device memory.
type DevMem struct {
	mem  []byte
	skip uintptr
	size uintptr
}

// MapRegion maps size bytes of physical memory starting at base.
// The base address does not need to be page aligned; the mapping is
// extended downward to the containing page boundary internally.
func MapRegion(base uint64, size int) (*DevMem, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmio: region size must be positive, got %d", size)
	}

	fd, err := unix.Open(devMemPath, unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("mmio: open %s: %w", devMemPath, err)
	}
	// The mapping outlives the descriptor.
	defer unix.Close(fd)

	page := uint64(os.Getpagesize())
	skip := base % page
	mem, err := unix.Mmap(fd, int64(base-skip), int(uint64(size)+skip),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmio: mmap 0x%X (+%d bytes): %w", base, size, err)
	}

	return &DevMem{
		mem:  mem,
		skip: uintptr(skip),
		size: uintptr(size),
	}, nil
}

// Close unmaps the region. The DevMem must not be used afterwards.
func (d *DevMem) Close() error {
	if d.mem == nil {
		return nil
	}
	mem := d.mem
	d.mem = nil
	if err := unix.Munmap(mem); err != nil {
		return fmt.Errorf("mmio: munmap: %w", err)
	}
	return nil
}

func (d *DevMem) ptr(off, width uintptr) unsafe.Pointer {
	if off+width > d.size {
		panic(fmt.Sprintf("mmio: access at offset 0x%X width %d outside region of %d bytes",
			off, width, d.size))
	}
	return unsafe.Pointer(&d.mem[d.skip+off])
}

// Read32 implements Region.
func (d *DevMem) Read32(off uintptr) uint32 {
	checkAlign(off, 4)
	return atomic.LoadUint32((*uint32)(d.ptr(off, 4)))
}

// Write32 implements Region.
func (d *DevMem) Write32(off uintptr, v uint32) {
	checkAlign(off, 4)
	atomic.StoreUint32((*uint32)(d.ptr(off, 4)), v)
}

// Read128 implements Region. The load is issued as two 64-bit bus
// transactions, low half first.
func (d *DevMem) Read128(off uintptr) Word {
	checkAlign(off, WordBytes)
	lo := atomic.LoadUint64((*uint64)(d.ptr(off, 8)))
	hi := atomic.LoadUint64((*uint64)(d.ptr(off+8, 8)))
	return Word{Hi: hi, Lo: lo}
}

// Write128 implements Region. The store is issued as two 64-bit bus
// transactions, low half first.
func (d *DevMem) Write128(off uintptr, w Word) {
	checkAlign(off, WordBytes)
	atomic.StoreUint64((*uint64)(d.ptr(off, 8)), w.Lo)
	atomic.StoreUint64((*uint64)(d.ptr(off+8, 8)), w.Hi)
}
