// Package quality implements the data-quality checks run by the cleaner.
//
// The IQR outlier detector is a pure function over []float64 and does not
// depend on the table types:
//
//	bounds, err := quality.ComputeBounds(values)
//	if errors.Is(err, apperrors.ErrInsufficientData) {
//	    // fewer than two non-missing values
//	}
//	bounds.IsOutlier(v) // v < Lower || v > Upper
//
// Quantiles interpolate linearly between order statistics, so Q1 and Q3 of
// [1 2 3 4 5 100] are 2.25 and 4.75. Missing values (NaN) are dropped before
// any quantile is taken and are never flagged by any check.
//
// Checker runs the timestamp, range and outlier checks over an observation
// table and returns a Report. Nothing is repaired or removed.
package quality
