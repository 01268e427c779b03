// Package scenario defines the operand/expectation triples the harness runs.
package scenario

import (
	"fmt"

	"github.com/sarchlab/mulcheck/refmodel"
)

// Scenario is one multiply request and the result it must produce.
type Scenario struct {
	// Name optionally labels the scenario.
	Name string
	// A is operand A ("input data").
	A uint8
	// B is operand B ("weight").
	B uint8
	// Expected is the asserted result.
	Expected uint8
}

// New returns a scenario whose expectation comes from the reference model.
func New(a, b uint8) Scenario {
	return Scenario{A: a, B: b, Expected: refmodel.Expected(a, b)}
}

// Literal returns a scenario with a literal expectation, for regression
// fixtures.
func Literal(a, b, expected uint8) Scenario {
	return Scenario{A: a, B: b, Expected: expected}
}

// Reference returns the reference model's result for the operands.
func (s Scenario) Reference() uint8 {
	return refmodel.Expected(s.A, s.B)
}

// MatchesReference reports whether the expectation agrees with the
// reference model.
func (s Scenario) MatchesReference() bool {
	return s.Expected == s.Reference()
}

func (s Scenario) String() string {
	if s.Name != "" {
		return fmt.Sprintf("%s: %d x %d = %d", s.Name, s.A, s.B, s.Expected)
	}
	return fmt.Sprintf("%d x %d = %d", s.A, s.B, s.Expected)
}

// Basic returns the literal end-to-end cases.
func Basic() []Scenario {
	return []Scenario{
		{Name: "simple multiplication", A: 2, B: 3, Expected: 6},
		{Name: "maximum value", A: 15, B: 15, Expected: 15},
		{Name: "zero multiplication", A: 5, B: 0, Expected: 0},
		{Name: "no saturation", A: 7, B: 2, Expected: 14},
		{Name: "all zero", A: 0, B: 0, Expected: 0},
		{Name: "saturated from 81", A: 9, B: 9, Expected: 15},
	}
}

// Grid returns every operand pair with expectations from the reference
// model, A-major.
func Grid() []Scenario {
	n := int(refmodel.Mask(refmodel.OperandWidth)) + 1
	out := make([]Scenario, 0, n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			out = append(out, New(uint8(a), uint8(b)))
		}
	}
	return out
}
