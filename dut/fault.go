package dut

import (
	"strings"

	"github.com/pkg/errors"
)

// Fault selects a deliberate defect in the behavioral model. Faults exist to
// check that the harness reports broken devices instead of passing them.
type Fault uint8

// Supported faults.
const (
	// FaultNone is a correct device.
	FaultNone Fault = iota
	// FaultStuckDone never raises the done flag.
	FaultStuckDone
	// FaultWrapping truncates the product instead of saturating it.
	FaultWrapping
	// FaultStaleDone clears the done flag of the previous operation one edge
	// after the new operation was accepted.
	FaultStaleDone
)

var faultNames = map[Fault]string{
	FaultNone:      "none",
	FaultStuckDone: "stuck-done",
	FaultWrapping:  "wrapping",
	FaultStaleDone: "stale-done",
}

func (f Fault) String() string {
	if n, ok := faultNames[f]; ok {
		return n
	}
	return "unknown"
}

// ParseFault returns the fault with the given name.
func ParseFault(name string) (Fault, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FaultNone, nil
	}
	for f, n := range faultNames {
		if n == name {
			return f, nil
		}
	}
	return FaultNone, errors.Errorf("unknown fault %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (f Fault) MarshalText() ([]byte, error) {
	if _, ok := faultNames[f]; !ok {
		return nil, errors.Errorf("invalid fault %d", uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fault) UnmarshalText(text []byte) error {
	v, err := ParseFault(string(text))
	if err != nil {
		return errors.Wrap(err, "decode fault")
	}
	*f = v
	return nil
}
