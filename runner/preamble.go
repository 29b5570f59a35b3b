package runner

import (
	"fmt"
	"strings"
)

// Define is a preprocessor constant injected ahead of the kernel source
type Define struct {
	Name  string
	Value int
}

// GeneratePreamble renders defines as #define lines, in the given order
func GeneratePreamble(defines ...Define) string {
	var sb strings.Builder
	for _, d := range defines {
		sb.WriteString(fmt.Sprintf("#define %s %d\n", d.Name, d.Value))
	}
	return sb.String()
}

// KernelSource combines the preamble with the kernel image
func KernelSource(image []byte, defines ...Define) string {
	return GeneratePreamble(defines...) + "\n" + string(image)
}

// buildProperties returns the kernel build properties for a device mode
func buildProperties(mode string) string {
	if mode == "OpenMP" {
		// Workaround for OCCA bug: OpenMP doesn't get default -O3 flag
		return `{"compiler_flags": "-O3"}`
	}
	return ""
}
