// Package hostrun runs the histogram kernel once on an accelerator and checks
// the result against the CPU reference.
package hostrun

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/notargets/HistKernel/config"
	"github.com/notargets/HistKernel/histogram"
	"github.com/notargets/HistKernel/runner"
)

// Result is the outcome of a completed run
type Result struct {
	Passed   bool
	Mismatch *histogram.Mismatch // first differing bucket, nil when Passed
	Mode     string              // backend of the programmed device
}

// Run generates the test image, programs a device from kernelImage, runs the
// kernel once and compares the device histogram with the reference. Errors
// are returned only for failures that prevent a verdict; the caller owns r
// and must Free it.
func Run(cfg config.Config, r *runner.Runner, kernelImage []byte, out io.Writer) (Result, error) {
	if cfg.Verbose {
		fmt.Fprintf(out, "Host: %s\n", config.HostInfo())
	}

	image := histogram.Generate(rand.New(rand.NewPCG(cfg.Seed, 0)), cfg.ImageSize)
	ref := histogram.Reference(image)
	var hw histogram.Histogram

	src := runner.KernelSource(kernelImage,
		runner.Define{Name: "IMAGE_SIZE", Value: cfg.ImageSize},
		runner.Define{Name: "HISTOGRAM_SIZE", Value: histogram.Size})
	if err := r.Acquire(cfg.Devices, src, cfg.KernelName); err != nil {
		return Result{}, err
	}

	err := r.DefineKernel(cfg.KernelName,
		runner.Input("image").Bind(image).CopyTo(),
		runner.Output("hist").Bind(hw[:]).Copy(),
		runner.Scalar("size").Bind(int32(len(image))))
	if err != nil {
		return Result{}, fmt.Errorf("failed to bind kernel arguments: %w", err)
	}

	if err := r.RunKernel(cfg.KernelName); err != nil {
		return Result{}, err
	}

	res := Result{Passed: true, Mode: r.Device.Mode()}
	if m, found := histogram.Compare(&ref, &hw); found {
		fmt.Fprintln(out, "Error: Result mismatch")
		fmt.Fprintln(out, m.String())
		res.Passed = false
		res.Mismatch = &m
	}

	if cfg.Verbose {
		fmt.Fprintf(out, "CPU histogram:    %v\n", histogram.Summarize(&ref))
		fmt.Fprintf(out, "Device histogram: %v\n", histogram.Summarize(&hw))
	}

	verdict := "PASSED"
	if !res.Passed {
		verdict = "FAILED"
	}
	fmt.Fprintf(out, "TEST %s\n", verdict)
	return res, nil
}
