package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Printer writes reports to an output.
type Printer struct {
	// Output is where to write results (default: os.Stdout)
	Output io.Writer
}

// NewPrinter returns a Printer writing to w. A nil w selects os.Stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{Output: w}
}

// PrintText outputs a report in a human-readable format.
func (p *Printer) PrintText(r *Report) {
	_, _ = fmt.Fprintln(p.Output, "=== Multiplier Handshake Verification ===")
	_, _ = fmt.Fprintf(p.Output, "Run:  %s\n", r.Metadata.RunID)
	if r.Metadata.Name != "" {
		_, _ = fmt.Fprintf(p.Output, "Name: %s\n", r.Metadata.Name)
	}
	t := r.Metadata.Timing
	_, _ = fmt.Fprintf(p.Output, "Timing: reset=%d settle=%d setup=%d gap=%d budget=%d result=%d interop=%d\n",
		t.ResetHoldEdges, t.SettleEdges, t.OperandSetupEdges, t.FirstSampleGap,
		t.PollBudget, t.ResultSettleEdges, t.InterOpGapEdges)
	_, _ = fmt.Fprintln(p.Output, "")

	for _, res := range r.Results {
		switch res.Status {
		case StatusPass:
			_, _ = fmt.Fprintf(p.Output, "  [PASS] #%-3d %2d x %2d = %2d (%d cycles)\n",
				res.Index, res.A, res.B, res.Actual, res.Cycles)
		case StatusTimeout:
			_, _ = fmt.Fprintf(p.Output, "  [TIME] #%-3d %2d x %2d: no done after %d cycles\n",
				res.Index, res.A, res.B, res.Cycles)
		case StatusMisuse:
			_, _ = fmt.Fprintf(p.Output, "  [PROT] #%-3d %2d x %2d: %s\n",
				res.Index, res.A, res.B, res.Message)
		default:
			_, _ = fmt.Fprintf(p.Output, "  [FAIL] #%-3d %2d x %2d: expected %d, got %d (%d cycles)\n",
				res.Index, res.A, res.B, res.Expected, res.Actual, res.Cycles)
		}
	}

	_, _ = fmt.Fprintln(p.Output, "")
	_, _ = fmt.Fprintf(p.Output, "Total:      %d\n", r.Summary.Total)
	_, _ = fmt.Fprintf(p.Output, "Passed:     %d\n", r.Summary.Passed)
	_, _ = fmt.Fprintf(p.Output, "Mismatches: %d\n", r.Summary.Mismatches)
	_, _ = fmt.Fprintf(p.Output, "Timeouts:   %d\n", r.Summary.Timeouts)
	if r.Summary.Misuses > 0 {
		_, _ = fmt.Fprintf(p.Output, "Misuses:    %d\n", r.Summary.Misuses)
	}
	_, _ = fmt.Fprintf(p.Output, "Edges:      %d (%.6f s simulated)\n", r.Summary.TotalEdges, r.Summary.SimulatedTime)
	_, _ = fmt.Fprintf(p.Output, "Wall Time:  %v\n", r.Summary.WallTime)
	_, _ = fmt.Fprintln(p.Output, r.String())
}

// PrintCSV outputs the per-scenario results in CSV format.
func (p *Printer) PrintCSV(r *Report) {
	_, _ = fmt.Fprintln(p.Output, "index,a,b,expected,reference,actual,cycles,status,start_edge,end_edge")

	for _, res := range r.Results {
		_, _ = fmt.Fprintf(p.Output, "%d,%d,%d,%d,%d,%d,%d,%s,%d,%d\n",
			res.Index,
			res.A,
			res.B,
			res.Expected,
			res.Reference,
			res.Actual,
			res.Cycles,
			res.Status,
			res.StartEdge,
			res.EndEdge,
		)
	}
}

// PrintJSON outputs the report in JSON format for automated comparison.
func (p *Printer) PrintJSON(r *Report) error {
	encoder := json.NewEncoder(p.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
