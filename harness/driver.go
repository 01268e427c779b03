package harness

import (
	"github.com/go-logr/logr"

	"github.com/sarchlab/mulcheck/bus"
	"github.com/sarchlab/mulcheck/timing/clock"
	"github.com/sarchlab/mulcheck/timing/protocol"
)

// Driver executes one multiply-by-handshake transaction.
type Driver struct {
	clock  *clock.Clock
	poller *Poller
	config *protocol.TimingConfig
	log    logr.Logger
}

// NewDriver returns a Driver.
func NewDriver(
	clk *clock.Clock,
	poller *Poller,
	config *protocol.TimingConfig,
	log logr.Logger,
) *Driver {
	return &Driver{clock: clk, poller: poller, config: config, log: log}
}

// Do loads a and b, pulses start for one edge, waits for done and reads the
// result. Operands wider than the bus fields are truncated. A timeout is
// returned as is, never retried.
func (d *Driver) Do(a, b uint8) Outcome {
	d.clock.SetInput(bus.EncodeOperandA(a))
	d.clock.SetBidir(bus.EncodeOperandBAndStrobe(b, false))
	d.clock.Advance(d.config.OperandSetupEdges)

	d.clock.SetBidir(bus.EncodeOperandBAndStrobe(b, true))
	d.clock.Advance(protocol.StrobeHoldEdges)

	// operands stay on the bus for devices that latch late
	d.clock.SetBidir(bus.EncodeOperandBAndStrobe(b, false))

	out := d.poller.Poll()
	if !out.Completed {
		d.log.V(1).Info("timed out", "a", a, "b", b, "cycles", out.Cycles)
		return out
	}

	d.clock.Advance(d.config.ResultSettleEdges)
	out.Result = bus.DecodeResult(d.clock.Output())
	return out
}
