// Command histkernel runs the 8-bit histogram kernel on the first device that
// accepts the given kernel image and verifies it against a CPU reference.
//
//	histkernel <Kernel File>
//
// Candidate devices, the image seed and verbose output are controlled by the
// HISTKERNEL_DEVICES, HISTKERNEL_SEED and HISTKERNEL_VERBOSE variables.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"

	"github.com/notargets/HistKernel/config"
	"github.com/notargets/HistKernel/hostrun"
	"github.com/notargets/HistKernel/runner"
)

func main() {
	atexit.Exit(run(os.Args, os.Getenv, runner.OpenOCCA, os.Stdout))
}

// run returns the process exit status
func run(args []string, getenv func(string) string, open runner.Opener, out io.Writer) int {
	if len(args) != 2 {
		prog := "histkernel"
		if len(args) > 0 {
			prog = filepath.Base(args[0])
		}
		fmt.Fprintf(out, "Usage: %s <Kernel File>\n", prog)
		return 1
	}

	cfg, err := config.FromEnv(getenv)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}

	kernelImage, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(out, "Error: failed to read kernel image: %v\n", err)
		return 1
	}

	r := runner.NewRunner(open, out)
	// atexit.Exit bypasses deferred calls
	atexit.Register(r.Free)

	res, err := hostrun.Run(cfg, r, kernelImage, out)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}
	if !res.Passed {
		return 1
	}
	return 0
}
