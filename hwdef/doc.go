// Package hwdef parses the hardware definition exported by the FPGA
// toolchain into driver configuration.
//
// # Input Format
//
// The toolchain's exported platform describes the address map as C
// preprocessor defines (the xparameters.h convention):
//
//	#define XPAR_ACCEL_CTRL_BASEADDR 0xA0000000
//	#define XPAR_ACCEL_DATA_BASEADDR 0xB0000000
//	#define XPAR_ACCEL_DATA_WIDTH 128
//
// Only defines matching the XPAR_ACCEL_ prefix are read; everything
// else in the file, including comments and unrelated defines, is
// ignored. The data width define is optional and defaults to 128 bits.
//
// # Usage
//
// Parse an exported header from disk:
//
//	p, err := hwdef.Parse("xparameters.h")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("control bank at 0x%08X\n", p.CtrlBase)
//
// The resulting Platform is handed to accel.Open, which maps the two
// regions and builds a driver instance. Base addresses are facts fixed
// by the hardware design; they are configuration here precisely so they
// are never baked into driver code.
package hwdef
