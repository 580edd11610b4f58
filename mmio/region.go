package mmio

// Region is a window of bus-addressable memory. Offsets are in bytes from
// the start of the region.
//
// Every method performs exactly one bus transaction (two 64-bit
// transactions for the 128-bit forms, low half first). Implementations
// must not cache values across calls, reorder accesses, or merge adjacent
// stores: register hardware is sensitive to the exact access sequence.
//
// Offsets must be aligned to the access width. A misaligned offset is a
// programming error and panics; the hardware bus has no ability to split
// or report a misaligned beat.
type Region interface {
	// Read32 loads a 32-bit value at the given byte offset.
	Read32(off uintptr) uint32

	// Write32 stores a 32-bit value at the given byte offset.
	Write32(off uintptr, v uint32)

	// Read128 loads a 128-bit word at the given byte offset.
	Read128(off uintptr) Word

	// Write128 stores a 128-bit word at the given byte offset.
	Write128(off uintptr, w Word)
}

func checkAlign(off uintptr, width uintptr) {
	if off%width != 0 {
		panic("mmio: misaligned register access")
	}
}
