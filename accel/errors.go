package accel

import (
	"errors"
	"fmt"
	"time"
)

// TimeoutError indicates that a run did not reach a terminal status
// within the configured bound. The hardware state after a timeout is
// unknown: the peripheral may still be running, so the caller must not
// assume the run was abandoned.
type TimeoutError struct {
	// Mode is the mode value the run was started with
	Mode uint32

	// Timeout is the bound that was exceeded
	Timeout time.Duration

	// Polls is the number of status polls performed before giving up
	Polls int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("run (mode=%d) timed out after %v and %d status polls; hardware state unknown",
		e.Mode, e.Timeout, e.Polls)
}

// IsTimeout returns true if the error is a TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// UndefinedStatusError indicates the status slot held both the accepted
// and rejected bits, which the hardware contract forbids. The driver
// surfaces it rather than silently picking one outcome.
type UndefinedStatusError struct {
	// Raw is the full 32-bit status value as loaded
	Raw uint32
}

func (e *UndefinedStatusError) Error() string {
	return fmt.Sprintf("undefined status 0x%08X: accepted and rejected bits both set", e.Raw)
}

// UnsupportedWordWidthError indicates the exported platform declares a
// data window width this driver cannot drive. The window accessors are
// built around 128-bit words.
type UnsupportedWordWidthError struct {
	// Bits is the declared window width
	Bits int
}

func (e *UnsupportedWordWidthError) Error() string {
	return fmt.Sprintf("unsupported data window width %d bits: driver requires 128", e.Bits)
}

// AddressOutOfRangeError indicates a transfer named a word address past
// the end of the data window.
type AddressOutOfRangeError struct {
	// Addr is the requested word address
	Addr uint32

	// Words is the window size in words
	Words int
}

func (e *AddressOutOfRangeError) Error() string {
	return fmt.Sprintf("word address %d is out of range: window holds %d words", e.Addr, e.Words)
}
