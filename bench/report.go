// SPDX-License-Identifier: MIT

// Package bench - result reporting.
//
// WriteCSV produces the machine-readable results file:
//
//	size_of_matrix;block_size;sequential_algo;parallel_algo
//	100;10;3;1
//
// Timings are whole milliseconds. Summary produces an aligned table for humans.

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Header is the results file header, in column order.
var Header = []string{"size_of_matrix", "block_size", "sequential_algo", "parallel_algo"}

// WriteCSV writes Header followed by one ';'-separated record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = Separator
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.N),
			strconv.Itoa(r.BlockSize),
			strconv.FormatInt(r.SequentialMillis(), 10),
			strconv.FormatInt(r.ParallelMillis(), 10),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// Summary writes an aligned table of rows plus a totals line.
// Numbers are grouped by thousands (English locale).
func Summary(w io.Writer, rows []Row) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	p.Fprintf(tw, "n\tblock\tsequential ms\tparallel ms\tspeedup\t\n")
	for _, r := range rows {
		p.Fprintf(tw, "%d\t%d\t%d\t%d\t%.2fx\t\n",
			r.N, r.BlockSize, r.SequentialMillis(), r.ParallelMillis(), r.Speedup())
	}

	seq := lo.SumBy(rows, func(r Row) time.Duration { return r.Sequential })
	par := lo.SumBy(rows, func(r Row) time.Duration { return r.Parallel })
	total := Row{Sequential: seq, Parallel: par}
	p.Fprintf(tw, "total\t%d\t%d\t%d\t%.2fx\t\n",
		len(rows), total.SequentialMillis(), total.ParallelMillis(), total.Speedup())

	return tw.Flush()
}
