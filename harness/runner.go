package harness

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/sarchlab/mulcheck/report"
	"github.com/sarchlab/mulcheck/scenario"
	"github.com/sarchlab/mulcheck/timing/clock"
	"github.com/sarchlab/mulcheck/timing/protocol"
)

// Runner runs scenarios through a Driver and checks each result.
type Runner struct {
	clock  *clock.Clock
	driver *Driver
	config *protocol.TimingConfig
	log    logr.Logger
	name   string
}

// NewRunner returns a Runner.
func NewRunner(
	clk *clock.Clock,
	driver *Driver,
	config *protocol.TimingConfig,
	log logr.Logger,
) *Runner {
	return &Runner{clock: clk, driver: driver, config: config, log: log}
}

// RunScenario runs a single scenario. The returned error is a *Failure if
// the scenario timed out or produced a value other than the expected one.
// The result is filled in either way.
func (r *Runner) RunScenario(index int, s scenario.Scenario) (report.Result, error) {
	res := report.Result{
		Index:     index,
		A:         s.A,
		B:         s.B,
		Expected:  s.Expected,
		Reference: s.Reference(),
		StartEdge: r.clock.Edges(),
	}

	r.log.Info("Test case", "index", index, "a", s.A, "b", s.B)
	out := r.driver.Do(s.A, s.B)
	res.Cycles = out.Cycles
	res.EndEdge = r.clock.Edges()

	if !out.Completed {
		f := &Failure{
			Kind:     Timeout,
			Index:    index,
			A:        s.A,
			B:        s.B,
			Expected: s.Expected,
			Cycles:   out.Cycles,
		}
		res.Status = f.Kind.Status()
		res.Message = f.Error()
		return res, f
	}

	res.Actual = out.Result
	if out.Result != s.Expected {
		f := &Failure{
			Kind:     ResultMismatch,
			Index:    index,
			A:        s.A,
			B:        s.B,
			Expected: s.Expected,
			Actual:   out.Result,
			Cycles:   out.Cycles,
		}
		res.Status = f.Kind.Status()
		res.Message = f.Error()
		return res, f
	}

	res.Status = report.StatusPass
	r.log.Info("Test case passed", "index", index, "result", out.Result, "cycles", out.Cycles)
	return res, nil
}

// Run runs every scenario in order and reports on them. A failing scenario
// does not stop the run.
func (r *Runner) Run(scenarios []scenario.Scenario) *report.Report {
	rep, _ := r.RunContext(context.Background(), scenarios)
	return rep
}

// RunContext is Run, checking ctx before each scenario. A scenario in
// progress is always finished, since its poll ends at the budget. On
// cancellation the partial report is returned with ctx's error.
func (r *Runner) RunContext(ctx context.Context, scenarios []scenario.Scenario) (*report.Report, error) {
	rep := report.New(r.name, r.config)
	defer func() {
		rep.Finish(r.clock.Edges(), float64(r.clock.Now()))
	}()

	r.log.Info("Start", "scenarios", len(scenarios))
	for i, s := range scenarios {
		if err := ctx.Err(); err != nil {
			r.log.Info("Stopped", "completed", i, "reason", err.Error())
			return rep, err
		}
		if i > 0 {
			r.clock.Advance(r.config.InterOpGapEdges)
		}

		res, err := r.RunScenario(i, s)
		if err != nil {
			r.log.Error(err, "Test case failed", "index", i)
		}
		rep.Add(res)
	}

	if rep.Passed() {
		r.log.Info("All tests passed!", "scenarios", len(scenarios))
	}
	return rep, nil
}
