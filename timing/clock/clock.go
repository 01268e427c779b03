// Package clock provides the single cooperative scheduler that drives a DUT.
//
// There is no free-running clock task. The harness owns the pins through a
// Clock and suspends only in Advance, which raises the requested number of
// rising edges on the device and returns. Pin writes made before Advance are
// sampled at the next edge; reads after Advance see the device as of the
// last edge.
package clock

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mulcheck/dut"
)

// HookPosRisingEdge marks hook invocations made after every rising edge. The
// hook item is an Edge.
var HookPosRisingEdge = &sim.HookPos{Name: "RisingEdge"}

// Edge is the pin state around one rising edge: the driven pins as sampled
// by the device and the output the device produced.
type Edge struct {
	// Cycle is the 1-based index of the edge.
	Cycle uint64
	// Time is the simulated time of the edge.
	Time   sim.VTimeInSec
	ResetN bool
	Enable bool
	Input  uint8 // ui_in
	Bidir  uint8 // uio_in
	Output uint8 // uo_out after the edge
}

// Clock drives a DUT one rising edge at a time.
type Clock struct {
	sim.HookableBase

	pins   dut.Pins
	freq   sim.Freq
	period sim.VTimeInSec
	edges  uint64
	now    sim.VTimeInSec

	resetN bool
	enable bool
	input  uint8
	bidir  uint8
}

// New returns a Clock driving pins at freq.
func New(pins dut.Pins, freq sim.Freq) *Clock {
	return &Clock{
		pins:   pins,
		freq:   freq,
		period: freq.Period(),
	}
}

// SetResetN drives rst_n.
func (c *Clock) SetResetN(level bool) {
	c.resetN = level
	c.pins.SetResetN(level)
}

// SetEnable drives ena.
func (c *Clock) SetEnable(on bool) {
	c.enable = on
	c.pins.SetEnable(on)
}

// SetInput drives ui_in.
func (c *Clock) SetInput(v uint8) {
	c.input = v
	c.pins.SetInput(v)
}

// SetBidir drives uio_in.
func (c *Clock) SetBidir(v uint8) {
	c.bidir = v
	c.pins.SetBidir(v)
}

// Output reads uo_out.
func (c *Clock) Output() uint8 {
	return c.pins.Output()
}

// Bidir returns the value currently driven on uio_in.
func (c *Clock) Bidir() uint8 {
	return c.bidir
}

// Tick raises a single rising edge.
func (c *Clock) Tick() {
	c.pins.RisingEdge()
	c.edges++
	c.now = sim.VTimeInSec(float64(c.edges) * float64(c.period))

	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosRisingEdge,
		Item: Edge{
			Cycle:  c.edges,
			Time:   c.now,
			ResetN: c.resetN,
			Enable: c.enable,
			Input:  c.input,
			Bidir:  c.bidir,
			Output: c.pins.Output(),
		},
	})
}

// Advance raises n rising edges.
func (c *Clock) Advance(n uint64) {
	for i := uint64(0); i < n; i++ {
		c.Tick()
	}
}

// Edges returns the number of edges raised so far.
func (c *Clock) Edges() uint64 {
	return c.edges
}

// Now returns the simulated time of the last edge.
func (c *Clock) Now() sim.VTimeInSec {
	return c.now
}

// Freq returns the clock frequency.
func (c *Clock) Freq() sim.Freq {
	return c.freq
}

// Period returns the clock period.
func (c *Clock) Period() sim.VTimeInSec {
	return c.period
}
