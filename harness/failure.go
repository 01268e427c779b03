package harness

import (
	"fmt"

	"github.com/sarchlab/mulcheck/report"
)

// FailureKind classifies a failed scenario.
type FailureKind uint8

// Failure kinds.
const (
	// Timeout means done was not raised within the poll budget: the device
	// is not live.
	Timeout FailureKind = iota + 1
	// ResultMismatch means done was raised with a wrong result: the device
	// is not correct.
	ResultMismatch
	// ProtocolMisuse covers harness-side protocol errors such as overlapping
	// strobes or unmasked field writes. Driver and the bus encoders make these
	// impossible, so no Failure of this kind is ever produced.
	ProtocolMisuse
)

func (k FailureKind) String() string {
	switch k {
	case Timeout:
		return "timeout"
	case ResultMismatch:
		return "result mismatch"
	case ProtocolMisuse:
		return "protocol misuse"
	default:
		return "unknown"
	}
}

// Status maps the kind onto a report status.
func (k FailureKind) Status() report.Status {
	switch k {
	case Timeout:
		return report.StatusTimeout
	case ProtocolMisuse:
		return report.StatusMisuse
	default:
		return report.StatusMismatch
	}
}

// Failure describes a failed scenario with enough context to reproduce it.
type Failure struct {
	Kind     FailureKind
	Index    int
	A, B     uint8
	Expected uint8
	Actual   uint8
	Cycles   uint64
}

func (f *Failure) Error() string {
	switch f.Kind {
	case Timeout:
		return fmt.Sprintf("scenario %d: %d x %d: done not raised within %d cycles",
			f.Index, f.A, f.B, f.Cycles)
	case ProtocolMisuse:
		return fmt.Sprintf("scenario %d: %d x %d: protocol misuse", f.Index, f.A, f.B)
	default:
		return fmt.Sprintf("scenario %d: %d x %d: expected %d, got %d",
			f.Index, f.A, f.B, f.Expected, f.Actual)
	}
}
