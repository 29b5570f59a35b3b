// Package histogram computes the CPU reference for the 8-bit histogram kernel
// and checks device results against it.
package histogram

import (
	"fmt"
	"unsafe"
)

// Size is the number of buckets, one per byte value
const Size = 256

// Histogram holds one counter per possible byte value
type Histogram [Size]uint32

// Bytes is the device footprint of a Histogram
const Bytes = int64(Size * unsafe.Sizeof(uint32(0)))

// Source is the random source used to fill test images
type Source interface {
	Uint32() uint32
}

// Generate returns n random samples, keeping the low byte of each draw
func Generate(rng Source, n int) []byte {
	image := make([]byte, n)
	for i := range image {
		image[i] = byte(rng.Uint32())
	}
	return image
}

// Reference counts the occurrences of every byte value in image
func Reference(image []byte) (h Histogram) {
	for _, v := range image {
		h[v]++
	}
	return
}

// Total returns the sum of all counters
func (h *Histogram) Total() (total uint64) {
	for _, c := range h {
		total += uint64(c)
	}
	return
}

// Mismatch records the first bucket where the device disagrees with the CPU
type Mismatch struct {
	Index  int
	CPU    uint32
	Device uint32
}

func (m Mismatch) String() string {
	return fmt.Sprintf("i = %d CPU result = %d Device result = %d", m.Index, m.CPU, m.Device)
}

// Compare scans buckets from 0 upward and stops at the first difference.
// It reports false when every bucket matches.
func Compare(ref, dev *Histogram) (Mismatch, bool) {
	for i := range ref {
		if ref[i] != dev[i] {
			return Mismatch{Index: i, CPU: ref[i], Device: dev[i]}, true
		}
	}
	return Mismatch{}, false
}
