// Package dut defines the pin contract of the multiplier peripheral and a
// behavioral model of it.
//
// The harness reaches a device only through Pins. Pin writes are held on the
// pins and sampled by the device on the next RisingEdge; Output reflects the
// device registers as of the last edge.
package dut

// Pins is the DUT pin interface.
//
//	clk    -> RisingEdge
//	rst_n  -> SetResetN (active low)
//	ena    -> SetEnable
//	ui_in  -> SetInput
//	uio_in -> SetBidir
//	uo_out -> Output
type Pins interface {
	// SetResetN drives rst_n. The device is held in reset while level is false.
	SetResetN(level bool)
	// SetEnable drives ena.
	SetEnable(on bool)
	// SetInput drives the 8-bit input port.
	SetInput(v uint8)
	// SetBidir drives the 8-bit bidirectional port.
	SetBidir(v uint8)
	// Output returns the 8-bit output port.
	Output() uint8
	// RisingEdge clocks the device once.
	RisingEdge()
}
