package mmio

import (
	"encoding/binary"
	"fmt"
)

// WordBytes is the size of one data-window word in bytes (128 bits).
const WordBytes = 16

// WordBits is the native width of the data window in bits.
const WordBits = 128

// Word is one 128-bit data-window payload, carried as two uint64 halves.
// The window hardware treats the payload as opaque; no interpretation is
// applied by the driver.
type Word struct {
	// Hi is the most significant 64 bits
	Hi uint64

	// Lo is the least significant 64 bits
	Lo uint64
}

// NewWord builds a Word from its high and low 64-bit halves.
//
// Example:
//
//	w := mmio.NewWord(0x0000000000000001, 0x0000000000000002)
func NewWord(hi, lo uint64) Word {
	return Word{Hi: hi, Lo: lo}
}

// Bytes returns the word in bus order: little-endian, low half first.
// This matches the layout of a 128-bit value in host memory on the
// little-endian cores the accelerator attaches to.
func (w Word) Bytes() [WordBytes]byte {
	var b [WordBytes]byte
	binary.LittleEndian.PutUint64(b[0:8], w.Lo)
	binary.LittleEndian.PutUint64(b[8:16], w.Hi)
	return b
}

// WordFromBytes rebuilds a Word from its bus-order byte layout.
func WordFromBytes(b [WordBytes]byte) Word {
	return Word{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// IsZero reports whether all 128 bits are clear.
func (w Word) IsZero() bool {
	return w.Hi == 0 && w.Lo == 0
}

// String formats the word as a 32-digit hex literal, most significant
// half first.
func (w Word) String() string {
	return fmt.Sprintf("0x%016X%016X", w.Hi, w.Lo)
}
