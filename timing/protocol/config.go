// Package protocol holds the cycle counts that make up the handshake
// protocol with the multiplier.
//
// Defaults follow the observed harness. The gap between strobe release and
// the first done sample is not fixed by the device contract and should be
// checked against the real device (see harness.Sweep).
package protocol

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// TimingConfig holds the edge counts of the reset and handshake sequences.
type TimingConfig struct {
	// ClockFreqHz is the clock frequency. Only its periodicity matters to the
	// protocol. Default: 100 kHz (10 us period).
	ClockFreqHz float64 `json:"clock_freq_hz"`

	// ResetHoldEdges is the number of edges rst_n is held low.
	// Default: 10 edges.
	ResetHoldEdges uint64 `json:"reset_hold_edges"`

	// SettleEdges is the number of edges waited after reset release before
	// any stimulus. Must be at least 1. Default: 5 edges.
	SettleEdges uint64 `json:"settle_edges"`

	// OperandSetupEdges is the number of edges the operands are held before
	// the strobe is raised. Default: 2 edges.
	OperandSetupEdges uint64 `json:"operand_setup_edges"`

	// FirstSampleGap is the number of edges after strobe release before done
	// is first sampled. Counts toward PollBudget. Must be at least 1.
	// Default: 1 edge.
	FirstSampleGap uint64 `json:"first_sample_gap"`

	// PollBudget is the maximum number of edges waited for done.
	// Default: 20 edges.
	PollBudget uint64 `json:"poll_budget"`

	// ResultSettleEdges is the number of edges waited after done before the
	// result is read. Default: 1 edge.
	ResultSettleEdges uint64 `json:"result_settle_edges"`

	// InterOpGapEdges is the number of edges between two operations.
	// Default: 2 edges.
	InterOpGapEdges uint64 `json:"inter_op_gap_edges"`
}

// StrobeHoldEdges is the number of edges the start strobe is held high. The
// device contract requires exactly one.
const StrobeHoldEdges = 1

// DefaultTimingConfig returns a TimingConfig with the observed values.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		ClockFreqHz:       100e3,
		ResetHoldEdges:    10,
		SettleEdges:       5,
		OperandSetupEdges: 2,
		FirstSampleGap:    1,
		PollBudget:        20,
		ResultSettleEdges: 1,
		InterOpGapEdges:   2,
	}
}

// LoadConfig loads a TimingConfig from a JSON file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read timing config file")
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "failed to parse timing config")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid timing config %s", path)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize timing config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write timing config file")
	}

	return nil
}

// Validate checks that the edge counts describe a usable protocol.
func (c *TimingConfig) Validate() error {
	if c.ClockFreqHz <= 0 {
		return errors.New("clock_freq_hz must be > 0")
	}
	if c.ResetHoldEdges == 0 {
		return errors.New("reset_hold_edges must be > 0")
	}
	if c.SettleEdges == 0 {
		return errors.New("settle_edges must be > 0")
	}
	if c.OperandSetupEdges == 0 {
		return errors.New("operand_setup_edges must be > 0")
	}
	if c.ResultSettleEdges == 0 {
		return errors.New("result_settle_edges must be > 0")
	}
	if c.PollBudget == 0 {
		return errors.New("poll_budget must be > 0")
	}
	if c.FirstSampleGap == 0 {
		return errors.New("first_sample_gap must be > 0")
	}
	if c.FirstSampleGap > c.PollBudget {
		return errors.New("first_sample_gap must be <= poll_budget")
	}
	return nil
}

// Clone returns a copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	clone := *c
	return &clone
}

// OperationEdges returns the number of edges one successful operation takes
// when done is seen after pollEdges edges, inter-operation gap excluded.
func (c *TimingConfig) OperationEdges(pollEdges uint64) uint64 {
	return c.OperandSetupEdges + StrobeHoldEdges + pollEdges + c.ResultSettleEdges
}
