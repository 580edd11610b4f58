package regbank

import (
	"github.com/acceldrv/go-axibram/mmio"
)

// Slot offsets within the bank, in bytes from the control base address.
const (
	// OffStart is the write-only start trigger slot
	OffStart = 0x0

	// OffMode is the configuration value slot
	OffMode = 0x4

	// OffStatus is the hardware-written status slot
	OffStatus = 0x8

	// OffGate is the data-window enable slot
	OffGate = 0xC
)

// Size is the footprint of the register bank in bytes: four 32-bit slots.
const Size = 16

// Gate slot values. The hardware reads the slot as a boolean; only the
// low bit is significant but the driver always stores exactly 0 or 1.
const (
	gateEnabled  = 1
	gateDisabled = 0
)

// startPulse is the constant part of the start sentinel. The value itself
// carries no meaning to the hardware; it only has to be stored.
const startPulse = 0x00000001

// startToggle is flipped into the sentinel on alternating calls so two
// consecutive WriteStart calls never store the same value.
const startToggle = 0x80000000

// Bank provides typed access to the four control/status slots of one
// peripheral instance.
type Bank struct {
	r      mmio.Region
	toggle uint32
}

// NewBank wraps a mapped control region. The region must span at least
// Size bytes.
func NewBank(r mmio.Region) *Bank {
	return &Bank{r: r}
}

// WriteStart requests a start pulse with a single 32-bit store to slot 0.
// There is no read-modify-write: the sentinel alternates a high bit
// driver-side, so consecutive calls produce distinct stored values and
// retrigger change-detecting pulse hardware as well as write-detecting
// hardware.
//
// Re-issuing a start while the peripheral is running starts a new run; it
// does not resume the current one. Callers must not assume idempotence.
func (b *Bank) WriteStart() {
	v := startPulse | b.toggle
	b.toggle ^= startToggle
	b.r.Write32(OffStart, v)
}

// WriteMode stores a configuration value in slot 1. No hardware side
// effect beyond the store.
func (b *Bank) WriteMode(mode uint32) {
	b.r.Write32(OffMode, mode)
}

// ReadStatus performs one fresh load of slot 2 and returns the raw value
// as a Status. The result is never cached: hardware rewrites the slot
// asynchronously, so a stale value is worse than a second bus read.
func (b *Bank) ReadStatus() Status {
	return Status(b.r.Read32(OffStatus))
}

// SetGate stores 1 or 0 into slot 3, enabling or disabling access to the
// bulk data window. The store must complete before any window access is
// issued; the accel package owns that ordering.
func (b *Bank) SetGate(enabled bool) {
	if enabled {
		b.r.Write32(OffGate, gateEnabled)
	} else {
		b.r.Write32(OffGate, gateDisabled)
	}
}
