package bram

import (
	"github.com/acceldrv/go-axibram/mmio"
)

// Window provides word-addressed access to the bulk data region of one
// peripheral instance.
//
// The caller must hold the gate asserted for the duration of every
// access; see the package documentation for the hazard. Window methods
// are not safe for concurrent use on their own; the accel package
// serializes all window traffic per peripheral instance.
type Window struct {
	r     mmio.Region
	check func()
}

// NewWindow wraps a mapped data region.
func NewWindow(r mmio.Region) *Window {
	return &Window{r: r}
}

// SetAccessCheck installs a hook invoked before every window access.
// A nil hook disables checking. The accel package installs a hook that
// panics if the gate is not asserted when gate assertions are enabled;
// production builds run without one, since the hardware cannot report
// the violation anyway.
func (w *Window) SetAccessCheck(fn func()) {
	w.check = fn
}

// Read performs one wide load of the word at the given word address and
// returns the raw payload with no interpretation.
func (w *Window) Read(wordAddr uint32) mmio.Word {
	if w.check != nil {
		w.check()
	}
	return w.r.Read128(uintptr(wordAddr) * mmio.WordBytes)
}

// Write performs one wide store of the word at the given word address.
func (w *Window) Write(wordAddr uint32, v mmio.Word) {
	if w.check != nil {
		w.check()
	}
	w.r.Write128(uintptr(wordAddr)*mmio.WordBytes, v)
}
