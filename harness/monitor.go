package harness

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mulcheck/bus"
	"github.com/sarchlab/mulcheck/timing/clock"
)

// Pulse is one strobe assertion as sampled by the device.
type Pulse struct {
	// Start is the edge on which the strobe was first sampled high.
	Start uint64
	// Length is the number of consecutive edges it stayed high.
	Length uint64
}

// StrobeMonitor is a clock hook that records strobe pulses and counts pulses
// issued before the previous operation raised done.
//
// Done is credited to an operation only when it rises after the operation's
// pulse, so a done flag left over from an earlier operation does not count.
type StrobeMonitor struct {
	pulses   []Pulse
	high     bool
	sawLow   bool
	done     bool
	overlaps int
}

// NewStrobeMonitor returns an empty StrobeMonitor.
func NewStrobeMonitor() *StrobeMonitor {
	return &StrobeMonitor{}
}

// Func implements sim.Hook.
func (m *StrobeMonitor) Func(ctx sim.HookCtx) {
	if ctx.Pos != clock.HookPosRisingEdge {
		return
	}
	edge, ok := ctx.Item.(clock.Edge)
	if !ok {
		return
	}

	if bus.DecodeStrobe(edge.Bidir) {
		m.strobe(edge.Cycle)
		return
	}
	m.high = false

	if len(m.pulses) == 0 {
		return
	}
	if !bus.DecodeDone(edge.Output) {
		m.sawLow = true
	} else if m.sawLow {
		m.done = true
	}
}

func (m *StrobeMonitor) strobe(cycle uint64) {
	if m.high {
		m.pulses[len(m.pulses)-1].Length++
		return
	}

	if len(m.pulses) > 0 && !m.done {
		m.overlaps++
	}
	m.high = true
	m.sawLow = false
	m.done = false
	m.pulses = append(m.pulses, Pulse{Start: cycle, Length: 1})
}

// Pulses returns a copy of the recorded pulses.
func (m *StrobeMonitor) Pulses() []Pulse {
	out := make([]Pulse, len(m.pulses))
	copy(out, m.pulses)
	return out
}

// Overlaps returns the number of pulses issued while the previous operation
// had not yet completed.
func (m *StrobeMonitor) Overlaps() int {
	return m.overlaps
}

// Reset forgets everything recorded so far.
func (m *StrobeMonitor) Reset() {
	*m = StrobeMonitor{}
}
