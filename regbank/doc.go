// Package regbank provides typed access to the accelerator's AXI-lite
// control/status register bank.
//
// # Register layout
//
// The bank is four consecutive 32-bit slots at fixed offsets from the
// control base address:
//
//	offset 0x0  start    write-only pulse trigger
//	offset 0x4  mode     read/write configuration value
//	offset 0x8  status   read-only, written by hardware
//	offset 0xC  gate     data-window enable, 1 while a transfer is in flight
//
// Slot roles are fixed by the hardware design, not enforced by it. The
// bank exposes one named accessor per slot instead of an indexable
// register array, so an out-of-range slot is unrepresentable.
//
// # Start pulses
//
// The peripheral derives its start condition from traffic on slot 0.
// Whether the pulse hardware fires on any write or only on a changed
// value is not observable from the interface description, so WriteStart
// stores a sentinel that differs on every consecutive call. Either pulse
// derivation sees a trigger.
//
// # Status
//
// Slot 2 is volatile: hardware rewrites it at any time and ReadStatus
// performs a fresh bus load on every call. See Status for the bit
// contract.
//
// Bank methods are not safe for concurrent use on their own; the accel
// package serializes all register traffic per peripheral instance.
package regbank
