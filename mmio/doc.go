// Package mmio provides volatile access to the accelerator's two
// memory-mapped regions: the 32-bit control/status register bank and the
// 128-bit-word bulk data window.
//
// # Regions
//
// All higher layers talk to hardware through the Region interface. A Region
// is a window of bus-addressable memory; every call performs exactly one
// bus transaction at the given byte offset. Accesses are never cached,
// reordered, or merged across calls.
//
// Two implementations are provided:
//
//   - DevMem maps a physical address range through /dev/mem (Linux only).
//     This is the backend used on the real hardware.
//   - MemRegion is an in-process buffer used by tests and mock devices.
//
// # Wide words
//
// The data window is addressed in 128-bit words. Word carries one payload
// as a pair of uint64 halves:
//
//	w := mmio.NewWord(0x0000000000000001, 0x0000000000000002)
//	region.Write128(0, w)
//	got := region.Read128(0)
//
// On a 64-bit host a 128-bit access is issued as two 64-bit bus
// transactions, low half first. The driver's gate discipline serializes
// window traffic, so the split is not observable by the peripheral.
//
// # Hardware independence
//
// Nothing above this package knows which backend is in use. Tests and the
// mock device example run the full driver against a MemRegion with no
// hardware attached.
package mmio
