// Package report collects per-scenario outcomes of a harness run and prints
// them.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"

	"github.com/sarchlab/mulcheck/timing/protocol"
)

// Status is the outcome of one scenario.
type Status string

// Scenario statuses.
const (
	StatusPass     Status = "pass"
	StatusMismatch Status = "mismatch"
	StatusTimeout  Status = "timeout"
	StatusMisuse   Status = "protocol_misuse"
)

// Result holds the outcome of a single scenario.
type Result struct {
	// Index is the position of the scenario in the run, starting at 0.
	Index int `json:"index"`

	// A and B are the operands as given by the scenario.
	A uint8 `json:"a"`
	B uint8 `json:"b"`

	// Expected is the value the scenario asserts.
	Expected uint8 `json:"expected"`

	// Reference is the reference model's value for A and B. It differs from
	// Expected only for literal fixtures that disagree with the model.
	Reference uint8 `json:"reference"`

	// Actual is the result read from the device. Zero on timeout.
	Actual uint8 `json:"actual"`

	// Cycles is the number of edges the done poll consumed, or the number
	// elapsed before giving up.
	Cycles uint64 `json:"cycles"`

	// Status is the scenario outcome.
	Status Status `json:"status"`

	// Message describes the failure. Empty on pass.
	Message string `json:"message,omitempty"`

	// StartEdge and EndEdge bracket the scenario on the clock.
	StartEdge uint64 `json:"start_edge"`
	EndEdge   uint64 `json:"end_edge"`
}

// Passed reports whether the scenario passed.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// Metadata describes a run.
type Metadata struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`

	// Name labels the run, e.g. the fixture or sweep point.
	Name string `json:"name,omitempty"`

	// Timestamp is when the run started.
	Timestamp string `json:"timestamp"`

	// Timing is the protocol timing the run used.
	Timing protocol.TimingConfig `json:"timing"`
}

// Summary holds aggregate counts.
type Summary struct {
	Total      int  `json:"total"`
	Passed     int  `json:"passed"`
	Mismatches int  `json:"mismatches"`
	Timeouts   int  `json:"timeouts"`
	Misuses    int  `json:"protocol_misuses"`
	AllPassed  bool `json:"all_passed"`

	// TotalEdges is the number of clock edges the run took, reset included.
	TotalEdges uint64 `json:"total_edges"`

	// SimulatedTime is the simulated duration of the run.
	SimulatedTime float64 `json:"simulated_time_sec"`

	// WallTime is the actual time taken by the run.
	WallTime time.Duration `json:"wall_time_ns"`
}

// Report is the complete output of a run.
type Report struct {
	Metadata Metadata `json:"metadata"`
	Results  []Result `json:"results"`
	Summary  Summary  `json:"summary"`

	started time.Time
}

// New starts a report for a run using the given timing.
func New(name string, timing *protocol.TimingConfig) *Report {
	now := time.Now()
	r := &Report{
		Metadata: Metadata{
			RunID:     xid.New().String(),
			Name:      name,
			Timestamp: now.UTC().Format(time.RFC3339),
		},
		Results: []Result{},
		started: now,
	}
	if timing != nil {
		r.Metadata.Timing = *timing
	}
	return r
}

// Add records a scenario result.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
	r.Summary.Total++
	switch res.Status {
	case StatusPass:
		r.Summary.Passed++
	case StatusMismatch:
		r.Summary.Mismatches++
	case StatusTimeout:
		r.Summary.Timeouts++
	case StatusMisuse:
		r.Summary.Misuses++
	}
}

// Finish closes the report with the run's edge count and simulated time.
func (r *Report) Finish(totalEdges uint64, simulatedTime float64) {
	r.Summary.TotalEdges = totalEdges
	r.Summary.SimulatedTime = simulatedTime
	r.Summary.AllPassed = r.Passed()
	if !r.started.IsZero() {
		r.Summary.WallTime = time.Since(r.started)
	}
}

// Passed reports whether every scenario passed.
func (r *Report) Passed() bool {
	return r.Summary.Passed == r.Summary.Total
}

// Failures returns the results that did not pass.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// Err returns nil if every scenario passed, or an error listing the failed
// scenarios.
func (r *Report) Err() error {
	failed := r.Failures()
	if len(failed) == 0 {
		return nil
	}
	msgs := make([]string, len(failed))
	for i, f := range failed {
		msgs[i] = f.Message
	}
	return errors.Errorf("%d of %d scenarios failed: %s",
		len(failed), r.Summary.Total, strings.Join(msgs, "; "))
}

// String returns a one-line summary.
func (r *Report) String() string {
	verdict := "PASS"
	if !r.Passed() {
		verdict = "FAIL"
	}
	return fmt.Sprintf("%s %d/%d passed (%d mismatches, %d timeouts) in %d edges",
		verdict, r.Summary.Passed, r.Summary.Total,
		r.Summary.Mismatches, r.Summary.Timeouts, r.Summary.TotalEdges)
}
