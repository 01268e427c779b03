package scenario

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"

	"github.com/sarchlab/mulcheck/refmodel"
)

// Fixture is a named list of scenarios stored as YAML:
//
//	name: regression
//	scenarios:
//	  - {a: 2, b: 3, expected: 6}
//	  - {a: 9, b: 9}            # expected from the reference model
type Fixture struct {
	Name      string         `yaml:"name"`
	Scenarios []fixtureEntry `yaml:"scenarios"`
}

type fixtureEntry struct {
	Name     string `yaml:"name,omitempty"`
	A        uint64 `yaml:"a"`
	B        uint64 `yaml:"b"`
	Expected *uint8 `yaml:"expected,omitempty"`
}

// Parse decodes a YAML fixture.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	f := &Fixture{}
	if err := dec.Decode(f); err != nil {
		return nil, errors.Wrap(err, "failed to parse scenario fixture")
	}

	resultMax := uint8(refmodel.Mask(refmodel.ResultWidth))
	for i, e := range f.Scenarios {
		if e.Expected != nil && *e.Expected > resultMax {
			return nil, errors.Errorf("scenario %d: expected %d does not fit the %d-bit result",
				i, *e.Expected, refmodel.ResultWidth)
		}
	}
	return f, nil
}

// LoadFile reads and decodes a YAML fixture file.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read scenario fixture")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %s", path)
	}
	return f, nil
}

// List returns the fixture's scenarios. Operands are truncated to the
// operand width. Entries without an expectation are derived from the
// reference model.
func (f *Fixture) List() []Scenario {
	mask := refmodel.Mask(refmodel.OperandWidth)
	out := make([]Scenario, len(f.Scenarios))
	for i, e := range f.Scenarios {
		s := New(uint8(e.A&mask), uint8(e.B&mask))
		if e.Expected != nil {
			s.Expected = *e.Expected
		}
		s.Name = e.Name
		out[i] = s
	}
	return out
}

// NewFixture wraps scenarios into a fixture with literal expectations.
func NewFixture(name string, scenarios []Scenario) *Fixture {
	f := &Fixture{Name: name, Scenarios: make([]fixtureEntry, len(scenarios))}
	for i, s := range scenarios {
		exp := s.Expected
		f.Scenarios[i] = fixtureEntry{Name: s.Name, A: uint64(s.A), B: uint64(s.B), Expected: &exp}
	}
	return f
}

// Marshal encodes the fixture as YAML.
func (f *Fixture) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode scenario fixture")
	}
	return data, nil
}
