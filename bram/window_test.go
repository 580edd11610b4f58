package bram

import (
	"testing"

	"github.com/acceldrv/go-axibram/mmio"
)

func TestWindowRoundTrip(t *testing.T) {
	r := mmio.NewMemRegion(16 * mmio.WordBytes)
	w := NewWindow(r)

	tests := []struct {
		name string
		addr uint32
		word mmio.Word
	}{
		{"word zero", 0, mmio.NewWord(0x0000000000000001, 0x0000000000000002)},
		{"middle of window", 7, mmio.NewWord(0xAAAAAAAAAAAAAAAA, 0x5555555555555555)},
		{"last word", 15, mmio.NewWord(0xFFFFFFFFFFFFFFFF, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.Write(tt.addr, tt.word)
			if got := w.Read(tt.addr); got != tt.word {
				t.Errorf("Read(%d) = %v, want %v", tt.addr, got, tt.word)
			}
		})
	}
}

func TestWindowAddressFormula(t *testing.T) {
	r := mmio.NewMemRegion(8 * mmio.WordBytes)
	w := NewWindow(r)

	var offs []uintptr
	r.SetTrace(func(a mmio.Access) {
		offs = append(offs, a.Off)
	})

	w.Write(0, mmio.NewWord(0, 1))
	w.Write(3, mmio.NewWord(0, 2))
	w.Read(5)

	want := []uintptr{0, 3 * mmio.WordBytes, 5 * mmio.WordBytes}
	if len(offs) != len(want) {
		t.Fatalf("got %d accesses, want %d", len(offs), len(want))
	}
	for i := range want {
		if offs[i] != want[i] {
			t.Errorf("access %d at byte offset 0x%X, want 0x%X", i, offs[i], want[i])
		}
	}
}

func TestWindowSingleAccessPerCall(t *testing.T) {
	r := mmio.NewMemRegion(4 * mmio.WordBytes)
	w := NewWindow(r)

	var n int
	r.SetTrace(func(a mmio.Access) { n++ })

	w.Write(1, mmio.NewWord(1, 2))
	if n != 1 {
		t.Errorf("Write issued %d bus transactions, want 1", n)
	}

	n = 0
	w.Read(1)
	if n != 1 {
		t.Errorf("Read issued %d bus transactions, want 1", n)
	}
}

func TestWindowAccessCheck(t *testing.T) {
	r := mmio.NewMemRegion(4 * mmio.WordBytes)
	w := NewWindow(r)

	var checks int
	w.SetAccessCheck(func() { checks++ })

	w.Write(0, mmio.NewWord(0, 1))
	w.Read(0)

	if checks != 2 {
		t.Errorf("access check invoked %d times, want 2", checks)
	}

	w.SetAccessCheck(nil)
	w.Read(0)
	if checks != 2 {
		t.Errorf("access check invoked after removal")
	}
}
