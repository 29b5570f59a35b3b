package config

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

const (
	// ImageSize is the number of 8-bit samples in the test image
	ImageSize = 4096
	// KernelName is the entry point expected in the kernel image
	KernelName = "hist"
	// DefaultSeed makes unconfigured runs reproducible
	DefaultSeed = 1
)

// Environment variables read by FromEnv
const (
	EnvDevices = "HISTKERNEL_DEVICES"
	EnvSeed    = "HISTKERNEL_SEED"
	EnvVerbose = "HISTKERNEL_VERBOSE"
)

// DefaultDevices lists OCCA device properties in the order they are tried.
// Accelerators come first, the host backends last.
var DefaultDevices = []string{
	`{"mode": "CUDA", "device_id": 0}`,
	`{"mode": "HIP", "device_id": 0}`,
	`{"mode": "OpenCL", "platform_id": 0, "device_id": 0}`,
	`{"mode": "OpenMP"}`,
	`{"mode": "Serial"}`,
}

// Config holds the parameters of a single verification run
type Config struct {
	ImageSize  int
	KernelName string
	Seed       uint64
	Devices    []string // OCCA JSON property strings, one per candidate device
	Verbose    bool
}

// Default returns the golden-path configuration
func Default() Config {
	devices := make([]string, len(DefaultDevices))
	copy(devices, DefaultDevices)
	return Config{
		ImageSize:  ImageSize,
		KernelName: KernelName,
		Seed:       DefaultSeed,
		Devices:    devices,
	}
}

// FromEnv overlays environment settings on the default configuration.
// getenv is usually os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if devs := getenv(EnvDevices); devs != "" {
		cfg.Devices = cfg.Devices[:0]
		for _, d := range strings.Split(devs, ";") {
			if d = strings.TrimSpace(d); d != "" {
				cfg.Devices = append(cfg.Devices, d)
			}
		}
		if len(cfg.Devices) == 0 {
			return cfg, fmt.Errorf("%s lists no devices", EnvDevices)
		}
	}

	if s := getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, s, err)
		}
		cfg.Seed = seed
	}

	if v := getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvVerbose, v, err)
		}
		cfg.Verbose = verbose
	}

	return cfg, nil
}

// HostInfo describes the host CPU for the verbose banner
func HostInfo() string {
	var features []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasAVX2 {
			features = append(features, "avx2")
		}
		if cpu.X86.HasAVX512F {
			features = append(features, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if cpu.ARM64.HasSVE {
			features = append(features, "sve")
		}
	}
	if len(features) == 0 {
		features = append(features, "baseline")
	}
	return fmt.Sprintf("%s/%s cpus=%d [%s]", runtime.GOOS, runtime.GOARCH,
		runtime.NumCPU(), strings.Join(features, " "))
}
