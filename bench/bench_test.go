package bench_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/blockmat/bench"
	"github.com/katalvlaran/blockmat/generator"
	"github.com/katalvlaran/blockmat/multiply"
	"github.com/stretchr/testify/require"
)

func TestReadCases(t *testing.T) {
	in := "size_of_matrix;block_size\n10;3\n\n 20; 20\n"
	cases, err := bench.ReadCases(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []bench.Case{{N: 10, BlockSize: 3}, {N: 20, BlockSize: 20}}, cases)
}

func TestReadCasesRejectsBadRows(t *testing.T) {
	for name, in := range map[string]string{
		"oversized block": "h;h\n5;6\n",
		"zero block":      "h;h\n5;0\n",
		"not a number":    "h;h\nfive;2\n",
		"three fields":    "h;h\n5;2;1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := bench.ReadCases(strings.NewReader(in))
			require.ErrorIs(t, err, bench.ErrBadCase)
		})
	}
}

func TestParsePlan(t *testing.T) {
	in := `
workers: 3
seed: 42
min: -5
verify: true
cases:
  - {n: 8, block_size: 3}
  - n: 4
    block_size: 4
`
	p, err := bench.ParsePlan(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, p.Workers)
	require.Equal(t, int64(42), p.Seed)
	require.True(t, p.Verify)
	require.Equal(t, []bench.Case{{N: 8, BlockSize: 3}, {N: 4, BlockSize: 4}}, p.Cases)

	min, max := p.Range()
	require.Equal(t, int32(-5), min)
	require.Equal(t, generator.DefaultMax, max)
	require.Equal(t, bench.DefaultOutput, p.OutputPath())
}

func TestParsePlanErrors(t *testing.T) {
	_, err := bench.ParsePlan(strings.NewReader("cases:\n  - {n: 2, block_size: 3}\n"))
	require.ErrorIs(t, err, bench.ErrBadCase)

	_, err = bench.ParsePlan(strings.NewReader("min: 5\nmax: 4\n"))
	require.ErrorIs(t, err, bench.ErrBadCase)

	_, err = bench.ParsePlan(strings.NewReader("wrokers: 3\n"))
	require.Error(t, err)
}

func TestParsePlanEmpty(t *testing.T) {
	p, err := bench.ParsePlan(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, p.Cases)
}

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out.csv\n"), 0o644))

	p, err := bench.LoadPlan(path)
	require.NoError(t, err)
	require.Equal(t, "out.csv", p.OutputPath())

	_, err = bench.LoadPlan(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunnerRun(t *testing.T) {
	m := multiply.New(multiply.WithWorkers(2))
	defer m.Close()
	r := bench.NewRunner(m, generator.New(generator.WithSeed(5)), bench.WithVerify(true))

	rows, err := r.Run([]bench.Case{{N: 6, BlockSize: 4}, {N: 9, BlockSize: 3}})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 6, rows[0].N)
	require.Equal(t, 4, rows[0].BlockSize)
	require.Equal(t, 9, rows[1].N)

	_, err = r.Run([]bench.Case{{N: 3, BlockSize: 4}})
	require.ErrorIs(t, err, bench.ErrBadCase)
}

func TestWriteCSV(t *testing.T) {
	rows := []bench.Row{
		{N: 100, BlockSize: 10, Sequential: 1500 * time.Millisecond, Parallel: 250*time.Millisecond + 900*time.Microsecond},
	}
	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, rows))
	require.Equal(t, "size_of_matrix;block_size;sequential_algo;parallel_algo\n100;10;1500;250\n", buf.String())
}

func TestSummary(t *testing.T) {
	rows := []bench.Row{
		{N: 2000, BlockSize: 100, Sequential: 4 * time.Second, Parallel: time.Second},
		{N: 10, BlockSize: 5, Sequential: 2 * time.Millisecond, Parallel: 0},
	}
	var buf bytes.Buffer
	require.NoError(t, bench.Summary(&buf, rows))

	out := buf.String()
	require.Contains(t, out, "2,000")
	require.Contains(t, out, "4,000")
	require.Contains(t, out, "4.00x")
	require.Contains(t, out, "total")
}

func TestRowSpeedup(t *testing.T) {
	require.Equal(t, 2.0, bench.Row{Sequential: 2 * time.Second, Parallel: time.Second}.Speedup())
	require.Equal(t, 0.0, bench.Row{Sequential: time.Second}.Speedup())
}

func TestHost(t *testing.T) {
	h := bench.Host()
	require.NotEmpty(t, h.GOOS)
	require.NotEmpty(t, h.GOARCH)
	require.Positive(t, h.NumCPU)
	require.Contains(t, h.String(), h.GOARCH)
}
