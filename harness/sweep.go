package harness

import (
	"context"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/mulcheck/dut"
	"github.com/sarchlab/mulcheck/report"
	"github.com/sarchlab/mulcheck/scenario"
	"github.com/sarchlab/mulcheck/timing/protocol"
)

// SweepPoint is one timing configuration to evaluate.
type SweepPoint struct {
	Name   string
	Config *protocol.TimingConfig
}

// SweepResult is the report of one sweep point.
type SweepResult struct {
	Point  SweepPoint
	Report *report.Report
}

// Passed reports whether every scenario passed at this point.
func (r SweepResult) Passed() bool {
	return r.Report != nil && r.Report.Passed()
}

// FirstSampleGapPoints returns one point per gap, each a copy of base.
func FirstSampleGapPoints(base *protocol.TimingConfig, gaps ...uint64) []SweepPoint {
	return vary(base, "first_sample_gap", func(c *protocol.TimingConfig, v uint64) {
		c.FirstSampleGap = v
	}, gaps)
}

// SettleEdgesPoints returns one point per settle length, each a copy of base.
func SettleEdgesPoints(base *protocol.TimingConfig, settles ...uint64) []SweepPoint {
	return vary(base, "settle_edges", func(c *protocol.TimingConfig, v uint64) {
		c.SettleEdges = v
	}, settles)
}

func vary(
	base *protocol.TimingConfig,
	field string,
	set func(*protocol.TimingConfig, uint64),
	values []uint64,
) []SweepPoint {
	points := make([]SweepPoint, len(values))
	for i, v := range values {
		c := base.Clone()
		set(c, v)
		points[i] = SweepPoint{Name: fmt.Sprintf("%s=%d", field, v), Config: c}
	}
	return points
}

// Sweep resets a fresh device from newPins for every point and runs the
// scenarios on it. Points run concurrently and share nothing, so opts must
// not carry hooks. Results are in point order.
//
// A scenario failure is recorded in its report, not returned. The error is
// non-nil only for an invalid point or a cancelled ctx.
func Sweep(
	ctx context.Context,
	points []SweepPoint,
	newPins func() dut.Pins,
	scenarios []scenario.Scenario,
	opts ...Option,
) ([]SweepResult, error) {
	results := make([]SweepResult, len(points))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range points {
		g.Go(func() error {
			pointOpts := make([]Option, 0, len(opts)+2)
			pointOpts = append(pointOpts, opts...)
			pointOpts = append(pointOpts, WithName(p.Name), WithTimingConfig(p.Config))

			h, err := New(newPins(), pointOpts...)
			if err != nil {
				return errors.Wrapf(err, "sweep point %s", p.Name)
			}

			h.Reset()
			rep, err := h.RunContext(ctx, scenarios)
			results[i] = SweepResult{Point: p, Report: rep}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
