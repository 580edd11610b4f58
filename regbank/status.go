package regbank

import "fmt"

// Status is the raw 32-bit value of the status slot.
//
// Bit contract:
//
//	bit 0  accepted
//	bit 1  rejected
//
// The two bits are mutually exclusive by hardware contract. Both clear
// means the peripheral is still running; both set is an undefined state
// that the driver surfaces as a distinct error rather than picking a
// side.
type Status uint32

// Status bits.
const (
	// StatusAccepted is set when the peripheral finished and accepted
	StatusAccepted Status = 1 << 0

	// StatusRejected is set when the peripheral finished and rejected
	StatusRejected Status = 1 << 1
)

const terminalMask = StatusAccepted | StatusRejected

// Accepted reports whether the status is a clean accept (0b01).
func (s Status) Accepted() bool {
	return s&terminalMask == StatusAccepted
}

// Rejected reports whether the status is a clean reject (0b10).
func (s Status) Rejected() bool {
	return s&terminalMask == StatusRejected
}

// Running reports whether the peripheral has not finished (0b00).
func (s Status) Running() bool {
	return s&terminalMask == 0
}

// Undefined reports whether both terminal bits are set (0b11), which the
// hardware contract forbids.
func (s Status) Undefined() bool {
	return s&terminalMask == terminalMask
}

// Terminal reports whether the peripheral has finished, cleanly or not.
// An Undefined status is terminal: polling further cannot resolve it.
func (s Status) Terminal() bool {
	return s&terminalMask != 0
}

func (s Status) String() string {
	switch {
	case s.Running():
		return "running"
	case s.Accepted():
		return "accepted"
	case s.Rejected():
		return "rejected"
	default:
		return fmt.Sprintf("undefined (0x%08X)", uint32(s))
	}
}
