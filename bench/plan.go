// SPDX-License-Identifier: MIT

// Package bench - YAML experiment plan.
//
// Example:
//
//	workers: 16
//	seed: 42
//	min: -50
//	max: 49
//	verify: true
//	output: result/results.csv
//	cases:
//	  - {n: 100, block_size: 10}
//	  - {n: 500, block_size: 64}
//
// Zero-valued fields fall back to the package defaults when the plan is resolved.

package bench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blockmat/generator"
)

// DefaultOutput is the results file written when no output is configured.
const DefaultOutput = "result/results.csv"

// Plan is the full configuration of one benchmark run.
type Plan struct {
	Workers int    `yaml:"workers"`
	Seed    int64  `yaml:"seed"`
	Min     *int32 `yaml:"min"`
	Max     *int32 `yaml:"max"`
	Verify  bool   `yaml:"verify"`
	Output  string `yaml:"output"`
	Cases   []Case `yaml:"cases"`
}

// ParsePlan decodes a YAML plan and validates its cases. Unknown keys are rejected.
func ParsePlan(r io.Reader) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ParsePlan: %w", err)
	}
	for _, c := range p.Cases {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("ParsePlan: %w", err)
		}
	}
	if p.Workers < 0 {
		return nil, fmt.Errorf("ParsePlan: workers=%d: %w", p.Workers, ErrBadCase)
	}
	if min, max := p.Range(); max < min {
		return nil, fmt.Errorf("ParsePlan: min=%d max=%d: %w", min, max, ErrBadCase)
	}

	return &p, nil
}

// LoadPlan reads and parses the YAML plan at path.
func LoadPlan(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadPlan: %w", err)
	}
	defer f.Close()

	return ParsePlan(f)
}

// Range returns the element range, defaulting to [generator.DefaultMin, generator.DefaultMax].
func (p *Plan) Range() (min, max int32) {
	min, max = generator.DefaultMin, generator.DefaultMax
	if p.Min != nil {
		min = *p.Min
	}
	if p.Max != nil {
		max = *p.Max
	}

	return min, max
}

// OutputPath returns Output or DefaultOutput.
func (p *Plan) OutputPath() string {
	if p.Output == "" {
		return DefaultOutput
	}

	return p.Output
}
