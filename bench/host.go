// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine a benchmark ran on.
type HostInfo struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	Features   []string // SIMD / atomics flags reported by golang.org/x/sys/cpu
}

// Host collects HostInfo for the current process.
func Host() HostInfo {
	return HostInfo{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   cpuFeatures(),
	}
}

// String renders HostInfo on one line.
func (h HostInfo) String() string {
	return fmt.Sprintf("%s/%s cpus=%d gomaxprocs=%d features=[%s]",
		h.GOOS, h.GOARCH, h.NumCPU, h.GOMAXPROCS, strings.Join(h.Features, " "))
}

type feature struct {
	name string
	on   bool
}

func cpuFeatures() []string {
	var flags []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		flags = []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"sse42", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
			{"fma", cpu.X86.HasFMA},
		}
	case "arm64":
		flags = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
			{"atomics", cpu.ARM64.HasATOMICS},
		}
	}

	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.on {
			out = append(out, f.name)
		}
	}

	return out
}
