// Command blockbench compares the sequential and parallel block matrix
// multiplication algorithms and records their timings.
//
// Usage:
//
//	blockbench run --params data/parameters.csv --out result/results.csv
//	blockbench run --config plan.yaml --verify
//	blockbench multiply --n 512 --block-size 64
//	blockbench host
package main

import (
	"flag"

	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	root := newRootCmd()
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	if err := root.Execute(); err != nil {
		klog.Exitf("blockbench: %v", err)
	}
}
