package runner

import (
	"fmt"
	"unsafe"

	"github.com/notargets/gocca"
)

type occaDevice struct {
	device *gocca.OCCADevice
	props  string
}

type occaKernel struct {
	kernel *gocca.OCCAKernel
}

type occaMemory struct {
	mem *gocca.OCCAMemory
}

// OpenOCCA opens an OCCA device, e.g. OpenOCCA(`{"mode": "Serial"}`)
func OpenOCCA(props string) (Device, error) {
	device, err := gocca.NewDevice(props)
	if err != nil {
		return nil, err
	}
	return &occaDevice{device: device, props: props}, nil
}

func (d *occaDevice) Mode() string       { return d.device.Mode() }
func (d *occaDevice) Properties() string { return d.props }
func (d *occaDevice) Finish()            { d.device.Finish() }
func (d *occaDevice) Free()              { d.device.Free() }

func (d *occaDevice) BuildKernel(source, name, props string) (Kernel, error) {
	var (
		kernel *gocca.OCCAKernel
		err    error
	)
	if props == "" {
		kernel, err = d.device.BuildKernelFromString(source, name, nil)
	} else {
		p := gocca.JsonParse(props)
		defer p.Free()
		kernel, err = d.device.BuildKernelFromString(source, name, p)
	}
	if err != nil {
		return nil, err
	}
	if kernel == nil {
		return nil, fmt.Errorf("kernel build returned nil for %s", name)
	}
	return &occaKernel{kernel: kernel}, nil
}

func (d *occaDevice) Malloc(bytes int64, src unsafe.Pointer) (Memory, error) {
	mem := d.device.Malloc(bytes, src, nil)
	if mem == nil {
		return nil, fmt.Errorf("malloc of %d bytes on %s returned nil", bytes, d.Mode())
	}
	return &occaMemory{mem: mem}, nil
}

func (k *occaKernel) RunWithArgs(args ...interface{}) error {
	occaArgs := make([]interface{}, len(args))
	for i, arg := range args {
		switch a := arg.(type) {
		case *occaMemory:
			occaArgs[i] = a.mem
		case Memory:
			return fmt.Errorf("argument %d: memory of type %T does not belong to an OCCA device", i, arg)
		default:
			occaArgs[i] = arg
		}
	}
	return k.kernel.RunWithArgs(occaArgs...)
}

func (k *occaKernel) Free() { k.kernel.Free() }

func (m *occaMemory) CopyFrom(src unsafe.Pointer, bytes int64) { m.mem.CopyFrom(src, bytes) }
func (m *occaMemory) CopyTo(dst unsafe.Pointer, bytes int64)   { m.mem.CopyTo(dst, bytes) }
func (m *occaMemory) Free()                                    { m.mem.Free() }
