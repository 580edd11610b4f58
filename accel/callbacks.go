package accel

import "time"

// Run phases reported through ProgressCallback.
const (
	// PhaseStarted: mode written, start pulse issued
	PhaseStarted = "started"

	// PhasePolling: waiting for a terminal status
	PhasePolling = "polling"

	// PhaseDone: terminal status observed
	PhaseDone = "done"
)

// Progress describes the state of a RunAndWait call. Passed to
// ProgressCallback while the driver mutex is held, so implementations
// must return quickly and must not call back into the Controller.
type Progress struct {
	// Phase is one of the Phase* constants
	Phase string

	// Mode is the mode value the run was started with
	Mode uint32

	// Polls is the number of status polls performed so far
	Polls int

	// Elapsed is the time since the start pulse was issued
	Elapsed time.Duration
}

// ProgressCallback is called while a run is in flight.
//
// Example:
//
//	ctrl := accel.New(ctrlRegion, dataRegion,
//	    accel.WithProgressCallback(func(p accel.Progress) {
//	        fmt.Printf("[%s] mode=%d polls=%d\n", p.Phase, p.Mode, p.Polls)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface. It matches any structured
// logger that takes a message and key-value pairs; a nil Logger disables
// logging entirely.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
