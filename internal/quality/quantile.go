package quality

import (
	"math"
	"sort"
)

// Quantile returns the p-quantile of sorted, interpolating linearly between
// the order statistics around h = (n-1)p. sorted must be ascending and free
// of NaN. p is clamped to [0, 1]; an empty slice yields NaN.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	switch {
	case p <= 0:
		return sorted[0]
	case p >= 1:
		return sorted[n-1]
	}

	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	if frac == 0 {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// SortedNonMissing returns an ascending copy of values with NaN removed.
// Infinities are kept. The input is not modified.
func SortedNonMissing(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}
