package accel

import "time"

// Config holds the controller configuration.
type Config struct {
	// PollInterval is the delay between status polls in RunAndWait
	PollInterval time.Duration

	// Timeout bounds how long RunAndWait waits for a terminal status
	Timeout time.Duration

	// WindowWords is the data window size in 128-bit words. Transfers
	// are range checked against it; 0 disables the check.
	WindowWords int

	// GateAssertions enables instrumented gate checking: any window
	// access without the gate asserted panics. For debugging only;
	// production hardware cannot report the violation either way.
	GateAssertions bool

	// ProgressCallback is called while a run is in flight (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration. The poll interval and
// timeout follow the reference bring-up procedure: poll every 10ms,
// give up after 5s.
func defaultConfig() Config {
	return Config{
		PollInterval: 10 * time.Millisecond,
		Timeout:      5 * time.Second,
		WindowWords:  DefaultWindowWords,
	}
}

// DefaultWindowWords is the data window size assumed when the caller
// does not override it: 4096 words, the 64KiB BRAM of the reference
// design.
const DefaultWindowWords = 4096

// Option is a functional option for configuring the Controller.
type Option func(*Config)

// WithPollInterval sets the delay between status polls.
//
// Example:
//
//	ctrl := accel.New(ctrlRegion, dataRegion, accel.WithPollInterval(time.Millisecond))
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.PollInterval = d
		}
	}
}

// WithTimeout bounds how long RunAndWait waits for a terminal status.
//
// Example:
//
//	ctrl := accel.New(ctrlRegion, dataRegion, accel.WithTimeout(30*time.Second))
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Timeout = d
		}
	}
}

// WithWindowWords sets the data window size in words for transfer range
// checking. Pass 0 to disable the check.
func WithWindowWords(words int) Option {
	return func(c *Config) {
		if words >= 0 {
			c.WindowWords = words
		}
	}
}

// WithGateAssertions enables instrumented gate checking. A window access
// issued without the gate asserted then panics instead of silently
// corrupting data. Meant for debug builds and tests.
func WithGateAssertions(enabled bool) Option {
	return func(c *Config) {
		c.GateAssertions = enabled
	}
}

// WithProgressCallback sets a callback invoked while a run is in flight.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for controller operations.
//
// Example:
//
//	ctrl := accel.New(ctrlRegion, dataRegion, accel.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
