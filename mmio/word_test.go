package mmio

import (
	"testing"
)

func TestNewWord(t *testing.T) {
	w := NewWord(0x0000000000000001, 0x0000000000000002)

	if w.Hi != 1 {
		t.Errorf("Hi = %d, want 1", w.Hi)
	}
	if w.Lo != 2 {
		t.Errorf("Lo = %d, want 2", w.Lo)
	}
}

func TestWordBytesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		word Word
	}{
		{"zero", Word{}},
		{"reference payload", NewWord(0x0000000000000001, 0x0000000000000002)},
		{"all ones", NewWord(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF)},
		{"asymmetric", NewWord(0x0123456789ABCDEF, 0xFEDCBA9876543210)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordFromBytes(tt.word.Bytes())
			if got != tt.word {
				t.Errorf("round trip = %v, want %v", got, tt.word)
			}
		})
	}
}

func TestWordBytesLayout(t *testing.T) {
	// Bus order is little-endian with the low half first.
	w := NewWord(0x1122334455667788, 0x99AABBCCDDEEFF00)
	b := w.Bytes()

	if b[0] != 0x00 {
		t.Errorf("byte 0 = 0x%02X, want 0x00 (LSB of Lo)", b[0])
	}
	if b[7] != 0x99 {
		t.Errorf("byte 7 = 0x%02X, want 0x99 (MSB of Lo)", b[7])
	}
	if b[8] != 0x88 {
		t.Errorf("byte 8 = 0x%02X, want 0x88 (LSB of Hi)", b[8])
	}
	if b[15] != 0x11 {
		t.Errorf("byte 15 = 0x%02X, want 0x11 (MSB of Hi)", b[15])
	}
}

func TestWordString(t *testing.T) {
	w := NewWord(0x0000000000000001, 0x0000000000000002)
	want := "0x00000000000000010000000000000002"

	if got := w.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestWordIsZero(t *testing.T) {
	if !(Word{}).IsZero() {
		t.Error("zero word should report IsZero")
	}
	if NewWord(0, 1).IsZero() || NewWord(1, 0).IsZero() {
		t.Error("non-zero word should not report IsZero")
	}
}
