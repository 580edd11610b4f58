package mmio

import (
	"encoding/binary"
	"fmt"
	"sync"
)

// Op identifies the kind of bus transaction seen by a MemRegion trace
// hook.
type Op int

const (
	// OpRead32 is a 32-bit load
	OpRead32 Op = iota

	// OpWrite32 is a 32-bit store
	OpWrite32

	// OpRead128 is a 128-bit load
	OpRead128

	// OpWrite128 is a 128-bit store
	OpWrite128
)

func (o Op) String() string {
	switch o {
	case OpRead32:
		return "read32"
	case OpWrite32:
		return "write32"
	case OpRead128:
		return "read128"
	case OpWrite128:
		return "write128"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Access describes one completed bus transaction on a MemRegion.
// For 32-bit operations the value is carried in Val.Lo.
type Access struct {
	// Op is the transaction kind
	Op Op

	// Off is the byte offset within the region
	Off uintptr

	// Val is the value loaded or stored
	Val Word
}

// MemRegion is an in-process Region backed by a byte slice. It stands in
// for real hardware in tests and mock devices.
//
// MemRegion is safe for concurrent use: each access holds an internal
// lock, so a trace hook observes transactions in a single global order
// even under concurrent callers. That ordering is what the concurrency
// tests rely on to detect interleaved gate sequences.
type MemRegion struct {
	mu    sync.Mutex
	buf   []byte
	trace func(Access)
}

// NewMemRegion creates a MemRegion of the given size in bytes, zero
// filled.
func NewMemRegion(size int) *MemRegion {
	return &MemRegion{buf: make([]byte, size)}
}

// SetTrace installs a hook called after every completed access, while the
// region lock is held. The hook must not access the region itself (it
// would deadlock); spawn a goroutine for reactions that touch memory, the
// way the mock device example does.
func (m *MemRegion) SetTrace(fn func(Access)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trace = fn
}

// Size returns the region size in bytes.
func (m *MemRegion) Size() int {
	return len(m.buf)
}

func (m *MemRegion) checkBounds(off, width uintptr) {
	if off+width > uintptr(len(m.buf)) {
		panic(fmt.Sprintf("mmio: access at offset 0x%X width %d outside region of %d bytes",
			off, width, len(m.buf)))
	}
}

// Read32 implements Region.
func (m *MemRegion) Read32(off uintptr) uint32 {
	checkAlign(off, 4)
	m.mu.Lock()
	defer m.mu.Unlock()

	m.checkBounds(off, 4)
	v := binary.LittleEndian.Uint32(m.buf[off:])
	if m.trace != nil {
		m.trace(Access{Op: OpRead32, Off: off, Val: Word{Lo: uint64(v)}})
	}
	return v
}

// Write32 implements Region.
func (m *MemRegion) Write32(off uintptr, v uint32) {
	checkAlign(off, 4)
	m.mu.Lock()
	defer m.mu.Unlock()

	m.checkBounds(off, 4)
	binary.LittleEndian.PutUint32(m.buf[off:], v)
	if m.trace != nil {
		m.trace(Access{Op: OpWrite32, Off: off, Val: Word{Lo: uint64(v)}})
	}
}

// Read128 implements Region.
func (m *MemRegion) Read128(off uintptr) Word {
	checkAlign(off, WordBytes)
	m.mu.Lock()
	defer m.mu.Unlock()

	m.checkBounds(off, WordBytes)
	w := Word{
		Lo: binary.LittleEndian.Uint64(m.buf[off:]),
		Hi: binary.LittleEndian.Uint64(m.buf[off+8:]),
	}
	if m.trace != nil {
		m.trace(Access{Op: OpRead128, Off: off, Val: w})
	}
	return w
}

// Write128 implements Region.
func (m *MemRegion) Write128(off uintptr, w Word) {
	checkAlign(off, WordBytes)
	m.mu.Lock()
	defer m.mu.Unlock()

	m.checkBounds(off, WordBytes)
	binary.LittleEndian.PutUint64(m.buf[off:], w.Lo)
	binary.LittleEndian.PutUint64(m.buf[off+8:], w.Hi)
	if m.trace != nil {
		m.trace(Access{Op: OpWrite128, Off: off, Val: w})
	}
}
