package histogram

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the shape of a histogram for diagnostic output
type Summary struct {
	Total    float64
	Occupied int
	Min, Max float64
	Mean     float64
	StdDev   float64
}

// Summarize computes bucket statistics of h
func Summarize(h *Histogram) Summary {
	counts := make([]float64, Size)
	occupied := 0
	for i, c := range h {
		counts[i] = float64(c)
		if c != 0 {
			occupied++
		}
	}
	mean, std := stat.MeanStdDev(counts, nil)
	return Summary{
		Total:    floats.Sum(counts),
		Occupied: occupied,
		Min:      floats.Min(counts),
		Max:      floats.Max(counts),
		Mean:     mean,
		StdDev:   std,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("total=%.0f occupied=%d/%d min=%.0f max=%.0f mean=%.2f stddev=%.2f",
		s.Total, s.Occupied, Size, s.Min, s.Max, s.Mean, s.StdDev)
}
