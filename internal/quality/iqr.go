package quality

import (
	"fmt"
	"math"

	"dataopscli/internal/config"
	apperrors "dataopscli/internal/errors"
)

// Bounds are the Tukey fences of a column
type Bounds struct {
	Q1    float64
	Q3    float64
	IQR   float64
	Lower float64
	Upper float64

	// N is the number of non-missing values the bounds were computed from
	N int
}

// ComputeBounds computes Q1, Q3 and the fences Q1-1.5·IQR and Q3+1.5·IQR.
// NaN values are ignored. Fewer than two remaining values is an
// INSUFFICIENT_DATA error wrapping apperrors.ErrInsufficientData.
// Infinite values are kept; a VALIDATION error is returned when they
// make either fence non-finite.
func ComputeBounds(values []float64) (Bounds, error) {
	sorted := SortedNonMissing(values)
	if len(sorted) < 2 {
		return Bounds{}, apperrors.NewInsufficientDataError(
			fmt.Sprintf("IQR needs at least 2 non-missing values, got %d", len(sorted))).
			WithContext("values", len(sorted))
	}

	q1 := Quantile(sorted, config.LowerQuartile)
	q3 := Quantile(sorted, config.UpperQuartile)
	iqr := q3 - q1

	b := Bounds{
		Q1:    q1,
		Q3:    q3,
		IQR:   iqr,
		Lower: q1 - config.IQRMultiplier*iqr,
		Upper: q3 + config.IQRMultiplier*iqr,
		N:     len(sorted),
	}
	if !isFinite(b.Lower) || !isFinite(b.Upper) {
		return Bounds{}, apperrors.NewAppValidationError("IQR fences are not finite; infinite values reach the quartiles").
			WithContext("q1", q1).
			WithContext("q3", q3)
	}
	return b, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsOutlier reports whether v lies strictly outside the fences.
// Values on a fence and NaN are not outliers.
func (b Bounds) IsOutlier(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return v < b.Lower || v > b.Upper
}

// OutlierResult holds the bounds and the rows falling outside them
type OutlierResult struct {
	Column string
	Bounds Bounds

	// Indices are positions in the input, ascending; Values[i] is the value at Indices[i]
	Indices []int
	Values  []float64
}

// Count returns the number of outliers
func (r OutlierResult) Count() int {
	return len(r.Indices)
}

// DetectOutliers computes bounds over values and returns every outlier in input order
func DetectOutliers(values []float64) (OutlierResult, error) {
	bounds, err := ComputeBounds(values)
	if err != nil {
		return OutlierResult{}, err
	}

	result := OutlierResult{Bounds: bounds}
	for i, v := range values {
		if bounds.IsOutlier(v) {
			result.Indices = append(result.Indices, i)
			result.Values = append(result.Values, v)
		}
	}
	return result, nil
}
