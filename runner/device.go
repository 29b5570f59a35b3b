package runner

import (
	"errors"
	"unsafe"
)

//go:generate mockgen -write_package_comment=false -package=runnermock -destination=runnermock/mock_runner.go github.com/notargets/HistKernel/runner Device,Kernel,Memory

var (
	// ErrNoDevice is returned when no candidate device accepts the kernel image
	ErrNoDevice = errors.New("failed to program any device")
	// ErrRuntime marks a failed runtime call after a device was programmed
	ErrRuntime = errors.New("accelerator runtime failure")
)

// Device is a compute device opened through the runtime
type Device interface {
	// Mode names the backend, e.g. "CUDA" or "Serial"
	Mode() string
	// Properties returns the JSON properties the device was opened with
	Properties() string
	// BuildKernel programs the device with source and returns the named entry
	// point. props is a JSON property string and may be empty.
	BuildKernel(source, name, props string) (Kernel, error)
	// Malloc allocates bytes of device memory, initialised from src when non-nil
	Malloc(bytes int64, src unsafe.Pointer) (Memory, error)
	// Finish blocks until all queued work has completed
	Finish()
	Free()
}

// Kernel is a programmed entry point on a device
type Kernel interface {
	// RunWithArgs enqueues one invocation. Memory arguments are passed as
	// Memory values, scalars by value.
	RunWithArgs(args ...interface{}) error
	Free()
}

// Memory is a device buffer
type Memory interface {
	// CopyFrom moves bytes from host memory at src to the device
	CopyFrom(src unsafe.Pointer, bytes int64)
	// CopyTo moves bytes from the device to host memory at dst
	CopyTo(dst unsafe.Pointer, bytes int64)
	Free()
}

// Opener opens a device from a JSON property string
type Opener func(props string) (Device, error)
