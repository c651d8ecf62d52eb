// SPDX-License-Identifier: MIT

// Package bench - experiment cases.
//
// Input format (parameters file):
//
//	size_of_matrix;block_size
//	100;10
//	100;33
//
// The first line is a header and is skipped. Blank lines are ignored.

package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Separator is the field delimiter of both the parameters and results files.
const Separator = ';'

// Case is one (matrix order, block size) experiment.
type Case struct {
	N         int `yaml:"n"`
	BlockSize int `yaml:"block_size"`
}

// Validate checks n > 0 and 0 < block size <= n.
func (c Case) Validate() error {
	if c.N <= 0 || c.BlockSize <= 0 || c.BlockSize > c.N {
		return fmt.Errorf("case n=%d block_size=%d: %w", c.N, c.BlockSize, ErrBadCase)
	}

	return nil
}

// ReadCases parses a ';'-separated parameters file.
//
// Errors:
//   - ErrBadCase for rows that do not hold exactly two integers, or fail Validate.
//   - reader/CSV syntax errors, wrapped.
func ReadCases(r io.Reader) ([]Case, error) {
	cr := csv.NewReader(r)
	cr.Comma = Separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var cases []Case
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCases: %w", err)
		}
		if header {
			header = false
			continue
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 2 {
			return nil, fmt.Errorf("ReadCases: line %d: %w", line, ErrBadCase)
		}
		n, errN := strconv.Atoi(strings.TrimSpace(rec[0]))
		k, errK := strconv.Atoi(strings.TrimSpace(rec[1]))
		if errN != nil || errK != nil {
			return nil, fmt.Errorf("ReadCases: line %d: %w", line, ErrBadCase)
		}
		c := Case{N: n, BlockSize: k}
		if err = c.Validate(); err != nil {
			return nil, fmt.Errorf("ReadCases: line %d: %w", line, err)
		}
		cases = append(cases, c)
	}

	return cases, nil
}
