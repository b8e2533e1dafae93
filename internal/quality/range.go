package quality

import "math"

// RangeResult lists the rows whose value is below a threshold
type RangeResult struct {
	Column    string
	Threshold float64
	Indices   []int
}

// Count returns the number of rows below the threshold
func (r RangeResult) Count() int {
	return len(r.Indices)
}

// CheckRange flags every value strictly below threshold. NaN is not flagged.
func CheckRange(values []float64, threshold float64) RangeResult {
	result := RangeResult{Threshold: threshold}
	for i, v := range values {
		if !math.IsNaN(v) && v < threshold {
			result.Indices = append(result.Indices, i)
		}
	}
	return result
}
