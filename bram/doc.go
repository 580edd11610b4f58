// Package bram provides typed access to the accelerator's bulk data
// window, a BRAM region addressed in 128-bit words.
//
// # Addressing
//
// The window is word addressed, not byte addressed: word address w maps
// to byte offset w * 16 from the data base address. Each Read or Write is
// exactly one wide access at that offset.
//
// # The gate hazard
//
// The window is only connected to the bus while the register bank's gate
// slot holds 1. The hardware gives no error signal for a violation: a
// read with the gate low returns stale or garbage data, and a write may
// be silently discarded. This layer therefore cannot check the
// precondition against hardware; ordering is owned by the accel package,
// which asserts the gate around every access it issues.
//
// For instrumented runs an access-check hook can be installed that is
// invoked before every access; the accel package uses it to turn a gate
// violation into a panic instead of silent corruption.
package bram
