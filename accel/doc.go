// Package accel provides the high-level driver for the accelerator: the
// gated transfer sequence over the bulk data window and the start/poll
// handshake over the control registers.
//
// # Overview
//
// The peripheral exposes two memory-mapped regions: a four-slot 32-bit
// register bank (start, mode, status, gate) and a 128-bit-word data
// window that is only usable while the gate slot holds 1. This package
// sequences both protocols correctly and serializes everything through
// one mutex per peripheral instance.
//
// # Basic Usage
//
// Against real hardware, parse the exported platform and open it:
//
//	p, err := hwdef.Parse("xparameters.h")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctrl, err := accel.Open(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctrl.Close()
//
//	// Configure and run
//	status, err := ctrl.RunAndWait(context.Background(), 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("run finished:", status)
//
//	// Move data through the gated window
//	err = ctrl.WriteWord(ctx, 0, mmio.NewWord(1, 2))
//	w, err := ctrl.ReadWord(ctx, 0)
//
// For tests and development without hardware, build the Controller over
// in-process regions instead:
//
//	ctrlRegion := mmio.NewMemRegion(regbank.Size)
//	dataRegion := mmio.NewMemRegion(64 * mmio.WordBytes)
//	ctrl := accel.New(ctrlRegion, dataRegion, accel.WithWindowWords(64))
//
// # Gated Transfers
//
// Every window access rides inside a gate-assert / access / gate-deassert
// sequence that the Controller treats as atomic: the driver mutex is
// held across all three steps and the gate is deasserted on every exit
// path. The hardware gives no error signal for an access with the gate
// low; it yields garbage reads or dropped writes. WithGateAssertions
// turns that class of programming error into a panic in instrumented
// runs.
//
// # Runs
//
// RunAndWait writes the mode slot, issues a start pulse, and polls the
// status slot until the peripheral reports accepted or rejected. The
// wait is always bounded by the configured timeout; on expiry a
// TimeoutError is returned and the hardware state is unknown. Start
// pulses are not idempotent-safe to retry, so nothing is retried
// automatically.
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	ctrl := accel.New(ctrlRegion, dataRegion,
//	    accel.WithPollInterval(10*time.Millisecond),
//	    accel.WithTimeout(5*time.Second),
//	    accel.WithWindowWords(4096),
//	    accel.WithLogger(myLogger),
//	    accel.WithProgressCallback(progressFunc),
//	)
//
// # Error Handling
//
// The package provides structured error types:
//   - TimeoutError: no terminal status within the bound
//   - UndefinedStatusError: accepted and rejected bits both set
//   - UnsupportedWordWidthError: platform declares a non-128-bit window
//   - AddressOutOfRangeError: word address past the end of the window
//
// # Concurrency
//
// Controller is safe for concurrent use. All gated transfers and all
// start/poll sequences on one instance are mutually exclusive; the gate
// register itself provides no atomicity, so this is a driver
// responsibility. The mutex cannot protect against other bus masters
// driving the same peripheral.
package accel
