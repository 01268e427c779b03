package dut

import (
	"github.com/sarchlab/mulcheck/bus"
	"github.com/sarchlab/mulcheck/refmodel"
)

// DefaultLatency is the number of edges the model spends computing once an
// operation has been accepted.
const DefaultLatency = 2

// Stats holds activity counters of the behavioral model.
type Stats struct {
	// Edges is the number of rising edges seen while enabled.
	Edges uint64
	// Resets is the number of edges seen with rst_n low.
	Resets uint64
	// Accepted is the number of start requests accepted.
	Accepted uint64
	// Completed is the number of operations that produced a result.
	Completed uint64
	// Ignored is the number of start requests dropped while busy.
	Ignored uint64
}

// Snapshot is the register state of the model at one edge.
type Snapshot struct {
	InputA    uint8 // registered ui_in[3:0]
	InputB    uint8 // registered uio_in[3:0]
	Start     bool  // registered uio_in[4]
	StartPrev bool  // Start one edge earlier, for edge detection
	Busy      bool
	Remaining int
	OpA, OpB  uint8 // operands latched at acceptance
	Result    uint8
	Done      bool
	ClearDone bool // pending late clear (FaultStaleDone)
}

// Option configures a Multiplier.
type Option func(*Multiplier)

// WithLatency sets the compute latency in edges. Values below 1 are raised to 1.
func WithLatency(edges int) Option {
	return func(m *Multiplier) {
		if edges < 1 {
			edges = 1
		}
		m.latency = edges
	}
}

// WithFault injects a defect.
func WithFault(f Fault) Option {
	return func(m *Multiplier) {
		m.fault = f
	}
}

// Multiplier is a behavioral model of the handshake multiplier.
//
// On every enabled rising edge it registers ui_in, uio_in[3:0] and the start
// bit. A rising edge of the registered start bit while idle accepts an
// operation: the registered operands are latched, done is cleared and the
// result appears after the configured latency together with done. Done stays
// high until the next operation is accepted.
//
// State is double-buffered: an edge computes the next frame from the current
// one and the held pin values, then swaps, so no pin write made between two
// edges is observed before the second one.
type Multiplier struct {
	latency int
	fault   Fault

	// held pin values
	resetN bool
	enable bool
	ui     uint8
	uio    uint8

	s0, s1 Snapshot // current and next frames
	stats  Stats
}

// NewMultiplier returns a model in its power-on state (in reset, disabled).
func NewMultiplier(opts ...Option) *Multiplier {
	m := &Multiplier{latency: DefaultLatency}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetResetN drives rst_n.
func (m *Multiplier) SetResetN(level bool) { m.resetN = level }

// SetEnable drives ena.
func (m *Multiplier) SetEnable(on bool) { m.enable = on }

// SetInput drives ui_in.
func (m *Multiplier) SetInput(v uint8) { m.ui = v }

// SetBidir drives uio_in.
func (m *Multiplier) SetBidir(v uint8) { m.uio = v }

// Output returns uo_out as of the last edge.
func (m *Multiplier) Output() uint8 {
	out := bus.Result.Insert(0, m.s0.Result)
	if m.s0.Done {
		out |= bus.DoneBit
	}
	return out
}

// RisingEdge clocks the model.
func (m *Multiplier) RisingEdge() {
	if !m.enable {
		return
	}
	m.stats.Edges++

	if !m.resetN {
		m.stats.Resets++
		m.s1 = Snapshot{}
		m.swap()
		return
	}

	cur := &m.s0
	next := &m.s1
	*next = *cur

	next.InputA = bus.OperandA.Extract(m.ui)
	next.InputB = bus.OperandB.Extract(m.uio)
	next.Start = bus.DecodeStrobe(m.uio)
	next.StartPrev = cur.Start

	if cur.ClearDone {
		next.Done = false
		next.ClearDone = false
	}

	switch {
	case cur.Busy:
		next.Remaining = cur.Remaining - 1
		if next.Remaining <= 0 {
			m.complete(next)
		}
	case cur.Start && !cur.StartPrev:
		m.accept(cur, next)
	}

	if cur.Busy && cur.Start && !cur.StartPrev {
		m.stats.Ignored++
	}

	m.swap()
}

func (m *Multiplier) accept(cur, next *Snapshot) {
	m.stats.Accepted++
	next.Busy = true
	next.Remaining = m.latency
	next.OpA = cur.InputA
	next.OpB = cur.InputB
	if m.fault == FaultStaleDone {
		next.ClearDone = true
	} else {
		next.Done = false
	}
}

func (m *Multiplier) complete(next *Snapshot) {
	m.stats.Completed++
	next.Busy = false
	next.Remaining = 0
	next.Result = m.compute(next.OpA, next.OpB)
	next.Done = m.fault != FaultStuckDone
	next.ClearDone = false
}

func (m *Multiplier) compute(a, b uint8) uint8 {
	if m.fault == FaultWrapping {
		return (a * b) & bus.Result.Mask()
	}
	return refmodel.Expected(a, b)
}

func (m *Multiplier) swap() {
	m.s0, m.s1 = m.s1, m.s0
}

// Snapshot returns the register state as of the last edge.
func (m *Multiplier) Snapshot() Snapshot {
	return m.s0
}

// Stats returns activity counters.
func (m *Multiplier) Stats() Stats {
	return m.stats
}

// Latency returns the configured compute latency.
func (m *Multiplier) Latency() int {
	return m.latency
}

// Fault returns the injected fault.
func (m *Multiplier) Fault() Fault {
	return m.fault
}
