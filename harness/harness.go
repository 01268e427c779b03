// Package harness drives the multiplier through its reset and start/done
// handshake and checks results against the reference model.
//
// All components share one clock.Clock. They run single-threaded and suspend
// only by advancing it.
package harness

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mulcheck/dut"
	"github.com/sarchlab/mulcheck/report"
	"github.com/sarchlab/mulcheck/scenario"
	"github.com/sarchlab/mulcheck/timing/clock"
	"github.com/sarchlab/mulcheck/timing/protocol"
)

// Option is a functional option for configuring the Harness.
type Option func(*Harness)

// WithTimingConfig sets the protocol timing. The config is copied.
func WithTimingConfig(config *protocol.TimingConfig) Option {
	return func(h *Harness) {
		h.config = config.Clone()
	}
}

// WithFreq overrides the clock frequency of the timing config.
func WithFreq(freq sim.Freq) Option {
	return func(h *Harness) {
		h.freq = freq
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(h *Harness) {
		h.log = log
	}
}

// WithHook attaches an edge hook to the clock.
func WithHook(hook sim.Hook) Option {
	return func(h *Harness) {
		h.hooks = append(h.hooks, hook)
	}
}

// WithName labels the reports of the harness.
func WithName(name string) Option {
	return func(h *Harness) {
		h.name = name
	}
}

// Harness wires the sequencer, driver and runner around one clock.
type Harness struct {
	config *protocol.TimingConfig
	log    logr.Logger
	hooks  []sim.Hook
	name   string
	freq   sim.Freq

	clock     *clock.Clock
	sequencer *Sequencer
	poller    *Poller
	driver    *Driver
	runner    *Runner
}

// New returns a harness driving pins.
func New(pins dut.Pins, opts ...Option) (*Harness, error) {
	h := &Harness{
		config: protocol.DefaultTimingConfig(),
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.freq != 0 {
		h.config.ClockFreqHz = float64(h.freq)
	}
	if err := h.config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid timing config")
	}

	h.clock = clock.New(pins, sim.Freq(h.config.ClockFreqHz))
	for _, hook := range h.hooks {
		h.clock.AcceptHook(hook)
	}
	h.sequencer = NewSequencer(h.clock, h.config, h.log)
	h.poller = NewPoller(h.clock, h.config, h.log)
	h.driver = NewDriver(h.clock, h.poller, h.config, h.log)
	h.runner = NewRunner(h.clock, h.driver, h.config, h.log)
	h.runner.name = h.name
	return h, nil
}

// Reset runs the power-on reset sequence.
func (h *Harness) Reset() {
	h.sequencer.Reset()
}

// Do runs one handshake transaction.
func (h *Harness) Do(a, b uint8) Outcome {
	return h.driver.Do(a, b)
}

// Run runs the scenarios and reports on them. It does not reset the device.
func (h *Harness) Run(scenarios []scenario.Scenario) *report.Report {
	return h.runner.Run(scenarios)
}

// RunContext is Run, stopping between scenarios once ctx is done.
func (h *Harness) RunContext(ctx context.Context, scenarios []scenario.Scenario) (*report.Report, error) {
	return h.runner.RunContext(ctx, scenarios)
}

// Clock returns the clock driving the device.
func (h *Harness) Clock() *clock.Clock {
	return h.clock
}

// Config returns a copy of the protocol timing in use.
func (h *Harness) Config() *protocol.TimingConfig {
	return h.config.Clone()
}

// Runner returns the scenario runner.
func (h *Harness) Runner() *Runner {
	return h.runner
}
