package harness

import (
	"github.com/go-logr/logr"

	"github.com/sarchlab/mulcheck/bus"
	"github.com/sarchlab/mulcheck/timing/clock"
	"github.com/sarchlab/mulcheck/timing/protocol"
)

// Poller waits for the done flag within a bounded number of edges.
type Poller struct {
	clock  *clock.Clock
	config *protocol.TimingConfig
	log    logr.Logger
}

// NewPoller returns a Poller.
func NewPoller(clk *clock.Clock, config *protocol.TimingConfig, log logr.Logger) *Poller {
	return &Poller{clock: clk, config: config, log: log}
}

// Poll samples done once per rising edge, at most PollBudget edges after the
// strobe was released. The first sample is taken FirstSampleGap edges after
// release, never before an edge has passed, so a done flag left over from the
// previous operation is not attributed to this one.
//
// The gap is clamped to [1, PollBudget], so the poll ends within the budget
// even with a config that was never validated.
//
// On success the outcome holds the result visible on the edge done rose.
func (p *Poller) Poll() Outcome {
	budget := p.config.PollBudget
	gap := min(max(p.config.FirstSampleGap, 1), budget)

	var blind uint64
	if gap > 0 {
		blind = gap - 1
	}
	p.clock.Advance(blind)

	var last uint8
	r := Retry(p.clock, func() bool {
		last = p.clock.Output()
		p.log.V(1).Info("poll", "edge", p.clock.Edges(), "uo_out", last)
		return bus.DecodeDone(last)
	}, budget-blind, 1)

	edges := blind + r.Edges
	if !r.Succeeded {
		return TimedOut(edges)
	}
	return Completed(bus.DecodeResult(last), edges)
}
