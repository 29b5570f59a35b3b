package runner

import (
	"fmt"
	"io"
	"os"
)

// KernelDefinition holds the ordered parameters of a defined kernel
type KernelDefinition struct {
	Name       string
	Parameters []ParamSpec
}

// Runner owns every runtime resource of a run: the programmed device, its
// kernels and the pooled device buffers. Free releases all of them.
type Runner struct {
	Out          io.Writer
	Device       Device
	Kernels      map[string]Kernel
	PooledMemory map[string]Memory

	open              Opener
	allocationOrder   []string
	kernelDefinitions map[string]*KernelDefinition
	freed             bool
}

// NewRunner creates a Runner that opens devices with open and writes progress
// lines to out (standard output when nil)
func NewRunner(open Opener, out io.Writer) *Runner {
	if open == nil {
		panic("runner: nil Opener")
	}
	if out == nil {
		out = os.Stdout
	}
	return &Runner{
		Out:               out,
		Kernels:           make(map[string]Kernel),
		PooledMemory:      make(map[string]Memory),
		open:              open,
		kernelDefinitions: make(map[string]*KernelDefinition),
	}
}

// Acquire tries each candidate device in order and keeps the first one that
// builds kernelName from source. Candidates that cannot be opened are not
// available and are skipped; a device that fails to program is released
// before the next candidate is tried.
func (kr *Runner) Acquire(candidates []string, source, kernelName string) error {
	if kr.freed {
		return fmt.Errorf("runner already freed")
	}
	if kr.Device != nil {
		return fmt.Errorf("device already acquired: %s", kr.Device.Mode())
	}

	for i, props := range candidates {
		device, err := kr.open(props)
		if err != nil {
			fmt.Fprintf(kr.Out, "Device candidate %s unavailable: %v\n", props, err)
			continue
		}

		fmt.Fprintf(kr.Out, "Trying to program device[%d]: %s\n", i, device.Mode())
		kernel, err := device.BuildKernel(source, kernelName, buildProperties(device.Mode()))
		if err != nil {
			fmt.Fprintf(kr.Out, "Failed to program device[%d] with kernel image!\n", i)
			fmt.Fprintf(kr.Out, "  %v\n", err)
			device.Free()
			continue
		}

		fmt.Fprintf(kr.Out, "Device[%d]: program successful!\n", i)
		kr.Device = device
		kr.Kernels[kernelName] = kernel
		return nil
	}

	fmt.Fprintln(kr.Out, "Failed to program any device found, exit!")
	return ErrNoDevice
}

// DefineKernel validates the parameters of a built kernel and allocates a
// device buffer for every non-scalar parameter. Parameter order is the kernel
// argument order.
func (kr *Runner) DefineKernel(kernelName string, params ...*ParamBuilder) error {
	if _, exists := kr.Kernels[kernelName]; !exists {
		return fmt.Errorf("kernel %s not built - call Acquire first", kernelName)
	}
	if _, exists := kr.kernelDefinitions[kernelName]; exists {
		return fmt.Errorf("kernel %s already defined", kernelName)
	}

	specs := make([]ParamSpec, len(params))
	seen := make(map[string]bool, len(params))
	for i, p := range params {
		specs[i] = p.Spec()
		if err := specs[i].Validate(); err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
		if seen[specs[i].Name] {
			return fmt.Errorf("parameter %d: duplicate name %s", i, specs[i].Name)
		}
		seen[specs[i].Name] = true
	}

	for i := range specs {
		if specs[i].Direction == DirectionScalar {
			continue
		}
		if err := kr.allocate(&specs[i]); err != nil {
			return err
		}
	}

	kr.kernelDefinitions[kernelName] = &KernelDefinition{
		Name:       kernelName,
		Parameters: specs,
	}
	return nil
}

func (kr *Runner) allocate(spec *ParamSpec) error {
	if _, exists := kr.PooledMemory[spec.Name]; exists {
		return fmt.Errorf("buffer %s already allocated", spec.Name)
	}
	mem, err := kr.Device.Malloc(spec.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("%w: allocate %s (%d bytes): %w", ErrRuntime, spec.Name, spec.Bytes(), err)
	}
	kr.PooledMemory[spec.Name] = mem
	kr.allocationOrder = append(kr.allocationOrder, spec.Name)
	return nil
}

// RunKernel migrates inputs to the device, runs the kernel once, waits for it
// to finish and migrates outputs back into their host bindings
func (kr *Runner) RunKernel(kernelName string) error {
	def, exists := kr.kernelDefinitions[kernelName]
	if !exists {
		return fmt.Errorf("kernel %s not defined - use DefineKernel first", kernelName)
	}
	kernel := kr.Kernels[kernelName]

	if err := kr.performPreKernelCopies(def); err != nil {
		return fmt.Errorf("pre-kernel copy failed: %w", err)
	}

	args, err := kr.buildKernelArguments(def)
	if err != nil {
		return fmt.Errorf("failed to build arguments: %w", err)
	}

	if err := kernel.RunWithArgs(args...); err != nil {
		return fmt.Errorf("%w: kernel %s execution failed: %w", ErrRuntime, kernelName, err)
	}

	kr.Device.Finish()

	if err := kr.performPostKernelCopies(def); err != nil {
		return fmt.Errorf("post-kernel copy failed: %w", err)
	}
	return nil
}

// performPreKernelCopies handles all host→device transfers before kernel execution
func (kr *Runner) performPreKernelCopies(def *KernelDefinition) error {
	for i := range def.Parameters {
		param := &def.Parameters[i]
		if param.Direction == DirectionScalar || !param.DoCopyTo {
			continue
		}
		mem, err := kr.memoryFor(param.Name)
		if err != nil {
			return err
		}
		mem.CopyFrom(param.hostPointer(), param.Bytes())
	}
	return nil
}

// performPostKernelCopies handles all device→host transfers after kernel execution
func (kr *Runner) performPostKernelCopies(def *KernelDefinition) error {
	for i := range def.Parameters {
		param := &def.Parameters[i]
		if param.Direction == DirectionScalar || !param.DoCopyBack {
			continue
		}
		mem, err := kr.memoryFor(param.Name)
		if err != nil {
			return err
		}
		mem.CopyTo(param.hostPointer(), param.Bytes())
	}
	return nil
}

// buildKernelArguments returns buffers and scalars in parameter order
func (kr *Runner) buildKernelArguments(def *KernelDefinition) ([]interface{}, error) {
	args := make([]interface{}, 0, len(def.Parameters))
	for _, p := range def.Parameters {
		if p.Direction == DirectionScalar {
			args = append(args, p.HostBinding)
			continue
		}
		mem, err := kr.memoryFor(p.Name)
		if err != nil {
			return nil, err
		}
		args = append(args, mem)
	}
	return args, nil
}

func (kr *Runner) memoryFor(name string) (Memory, error) {
	mem, exists := kr.PooledMemory[name]
	if !exists {
		return nil, fmt.Errorf("device memory for %s not found", name)
	}
	return mem, nil
}

// GetKernelDefinition returns the definition of a defined kernel
func (kr *Runner) GetKernelDefinition(kernelName string) (*KernelDefinition, bool) {
	def, exists := kr.kernelDefinitions[kernelName]
	return def, exists
}

// Free releases kernels, then buffers in reverse allocation order, then the
// device. Calling it again is a no-op.
func (kr *Runner) Free() {
	if kr.freed {
		return
	}
	kr.freed = true

	for _, kernel := range kr.Kernels {
		kernel.Free()
	}
	for i := len(kr.allocationOrder) - 1; i >= 0; i-- {
		kr.PooledMemory[kr.allocationOrder[i]].Free()
	}
	if kr.Device != nil {
		kr.Device.Free()
	}

	kr.Kernels = make(map[string]Kernel)
	kr.PooledMemory = make(map[string]Memory)
	kr.allocationOrder = nil
	kr.Device = nil
}
