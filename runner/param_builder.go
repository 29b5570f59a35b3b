package runner

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Direction indicates parameter data flow
type Direction int

const (
	DirectionInput Direction = iota
	DirectionOutput
	DirectionScalar
)

func (d Direction) String() string {
	switch d {
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	case DirectionScalar:
		return "scalar"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DataType is the element type of a bound host variable
type DataType int

const (
	Uint8 DataType = iota + 1
	Uint32
	Int32
	Int64
	Float32
	Float64
)

// SizeOfType returns the size in bytes of a data type
func SizeOfType(dt DataType) int64 {
	switch dt {
	case Uint8:
		return 1
	case Uint32, Int32, Float32:
		return 4
	default:
		return 8
	}
}

// ParamBuilder provides a fluent interface for building kernel parameters
type ParamBuilder struct {
	spec ParamSpec
}

// ParamSpec holds the complete specification for a kernel parameter
type ParamSpec struct {
	Name        string
	Direction   Direction
	HostBinding interface{}

	// Inferred from the binding
	DataType DataType
	Size     int64 // elements

	DoCopyTo   bool
	DoCopyBack bool
}

// Input creates a parameter specification for a read-only device buffer
func Input(deviceName string) *ParamBuilder {
	return &ParamBuilder{spec: ParamSpec{Name: deviceName, Direction: DirectionInput}}
}

// Output creates a parameter specification for a device buffer the kernel writes
func Output(deviceName string) *ParamBuilder {
	return &ParamBuilder{spec: ParamSpec{Name: deviceName, Direction: DirectionOutput}}
}

// Scalar creates a parameter specification for a value passed by copy
func Scalar(deviceName string) *ParamBuilder {
	return &ParamBuilder{spec: ParamSpec{Name: deviceName, Direction: DirectionScalar}}
}

// Bind associates a host variable with this parameter. Buffers bind a slice,
// whose backing array receives device results; scalars bind a value.
func (p *ParamBuilder) Bind(hostVar interface{}) *ParamBuilder {
	p.spec.HostBinding = hostVar
	p.inferFromBinding()
	return p
}

// Copy sets bidirectional copy (host→device before, device→host after)
func (p *ParamBuilder) Copy() *ParamBuilder {
	p.spec.DoCopyTo = true
	p.spec.DoCopyBack = true
	return p
}

// CopyTo sets host→device copy before kernel execution
func (p *ParamBuilder) CopyTo() *ParamBuilder {
	p.spec.DoCopyTo = true
	return p
}

// CopyBack sets device→host copy after kernel execution
func (p *ParamBuilder) CopyBack() *ParamBuilder {
	p.spec.DoCopyBack = true
	return p
}

// Spec returns the accumulated specification
func (p *ParamBuilder) Spec() ParamSpec {
	return p.spec
}

func (p *ParamBuilder) inferFromBinding() {
	p.spec.DataType, p.spec.Size = 0, 0
	if p.spec.HostBinding == nil {
		return
	}

	t := reflect.TypeOf(p.spec.HostBinding)
	kind := t.Kind()
	if kind == reflect.Slice {
		p.spec.Size = int64(reflect.ValueOf(p.spec.HostBinding).Len())
		kind = t.Elem().Kind()
	} else {
		p.spec.Size = 1
	}

	switch kind {
	case reflect.Uint8:
		p.spec.DataType = Uint8
	case reflect.Uint32:
		p.spec.DataType = Uint32
	case reflect.Int32:
		p.spec.DataType = Int32
	case reflect.Int64:
		p.spec.DataType = Int64
	case reflect.Float32:
		p.spec.DataType = Float32
	case reflect.Float64:
		p.spec.DataType = Float64
	}
}

// Validate checks if the parameter specification is complete and valid
func (p *ParamSpec) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("parameter name cannot be empty")
	}
	if p.HostBinding == nil {
		return fmt.Errorf("%s %s needs a host binding", p.Direction, p.Name)
	}
	if p.DataType == 0 {
		return fmt.Errorf("%s %s: unsupported binding type %T", p.Direction, p.Name, p.HostBinding)
	}

	isSlice := reflect.TypeOf(p.HostBinding).Kind() == reflect.Slice
	if p.Direction == DirectionScalar {
		if isSlice {
			return fmt.Errorf("scalar %s cannot bind a slice", p.Name)
		}
		if p.DoCopyTo || p.DoCopyBack {
			return fmt.Errorf("scalar %s cannot have copy operations", p.Name)
		}
		return nil
	}

	if !isSlice {
		return fmt.Errorf("%s %s must bind a slice, got %T", p.Direction, p.Name, p.HostBinding)
	}
	if p.Size == 0 {
		return fmt.Errorf("%s %s needs size", p.Direction, p.Name)
	}
	if p.Direction == DirectionInput && p.DoCopyBack {
		return fmt.Errorf("input %s cannot be copied back", p.Name)
	}
	return nil
}

// Bytes returns the device footprint of a buffer parameter
func (p *ParamSpec) Bytes() int64 {
	return p.Size * SizeOfType(p.DataType)
}

// hostPointer returns the address of the first element of a bound slice
func (p *ParamSpec) hostPointer() unsafe.Pointer {
	return reflect.ValueOf(p.HostBinding).UnsafePointer()
}
