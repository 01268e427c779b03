package harness

import (
	"github.com/go-logr/logr"

	"github.com/sarchlab/mulcheck/timing/clock"
	"github.com/sarchlab/mulcheck/timing/protocol"
)

// Sequencer brings the device into a known idle, out-of-reset state.
type Sequencer struct {
	clock  *clock.Clock
	config *protocol.TimingConfig
	log    logr.Logger
}

// NewSequencer returns a Sequencer.
func NewSequencer(clk *clock.Clock, config *protocol.TimingConfig, log logr.Logger) *Sequencer {
	return &Sequencer{clock: clk, config: config, log: log}
}

// Reset enables the device, zeroes the driven ports, holds rst_n low for
// ResetHoldEdges and then waits SettleEdges after releasing it. It cannot
// fail.
func (s *Sequencer) Reset() {
	s.log.Info("Reset", "hold", s.config.ResetHoldEdges, "settle", s.config.SettleEdges)

	s.clock.SetEnable(true)
	s.clock.SetInput(0)
	s.clock.SetBidir(0)
	s.clock.SetResetN(false)
	s.clock.Advance(s.config.ResetHoldEdges)

	s.clock.SetResetN(true)
	s.clock.Advance(s.config.SettleEdges)
}
