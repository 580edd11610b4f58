package hwdef

import "fmt"

// Platform describes one accelerator instance as exported by the
// hardware toolchain: where its two memory regions live and how wide the
// data window is.
type Platform struct {
	// CtrlBase is the physical base address of the control register bank
	CtrlBase uint64

	// DataBase is the physical base address of the bulk data window
	DataBase uint64

	// WordBits is the data window width in bits (128 in the reference
	// design)
	WordBits int
}

// DefaultWordBits is assumed when the exported platform does not name a
// data width.
const DefaultWordBits = 128

// Validate checks that the platform is complete and self-consistent.
// It is called by Parse; call it directly when building a Platform by
// hand.
func (p Platform) Validate() error {
	if p.CtrlBase == 0 {
		return fmt.Errorf("hwdef: control base address missing")
	}
	if p.DataBase == 0 {
		return fmt.Errorf("hwdef: data base address missing")
	}
	if p.CtrlBase == p.DataBase {
		return fmt.Errorf("hwdef: control and data regions share base address 0x%X", p.CtrlBase)
	}
	if p.WordBits <= 0 || p.WordBits%32 != 0 {
		return fmt.Errorf("hwdef: data width must be a positive multiple of 32 bits, got %d", p.WordBits)
	}
	return nil
}
