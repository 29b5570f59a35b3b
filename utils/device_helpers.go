package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/notargets/HistKernel/config"
	"github.com/notargets/HistKernel/runner"
)

// CreateTestDevice opens the first available device from the default
// candidate list, preferring accelerators over host backends. The test is
// skipped when the OCCA runtime offers no device at all.
func CreateTestDevice(t testing.TB) runner.Device {
	t.Helper()
	for _, props := range config.DefaultDevices {
		device, err := runner.OpenOCCA(props)
		if err == nil {
			fmt.Printf("Created %s Device\n", device.Mode())
			return device
		}
	}
	t.Skip("no OCCA device available")
	return nil
}

// KernelImagePath returns the path of the histogram kernel shipped with the
// module
func KernelImagePath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "kernels", "hist.okl")
}

// ReadKernelImage loads the shipped histogram kernel, failing the test if it
// is missing
func ReadKernelImage(t testing.TB) []byte {
	t.Helper()
	image, err := os.ReadFile(KernelImagePath())
	if err != nil {
		t.Fatalf("read kernel image: %v", err)
	}
	return image
}
