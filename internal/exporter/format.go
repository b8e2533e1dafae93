package exporter

import (
	"math"
	"strconv"
	"time"

	"dataopscli/pkg/contracts/domain"
)

// TimestampLayout is how instants are printed in reports
const TimestampLayout = "2006-01-02 15:04:05"

// Null markers per kind
const (
	nullFloat = "NaN"
	nullTime  = "NaT"
	nullOther = "None"
)

// formatFloat prints the shortest representation that round-trips,
// keeping one decimal on integral values so floats read as floats
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return nullFloat
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatStat prints a summary statistic with six decimals
func formatStat(f float64) string {
	if math.IsNaN(f) {
		return nullFloat
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// formatBound prints IQR statistics with four decimals
func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// formatTime prints an instant, with fractional seconds only when present
func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return nullTime
	}
	if ts.Nanosecond() != 0 {
		return ts.Format("2006-01-02 15:04:05.999999999")
	}
	return ts.Format(TimestampLayout)
}

// formatCell renders row i of a column
func formatCell(c *domain.Column, i int) string {
	if c.IsNull(i) {
		switch c.Kind {
		case domain.KindFloat, domain.KindInt:
			return nullFloat
		case domain.KindDatetime:
			return nullTime
		default:
			return nullOther
		}
	}
	switch c.Kind {
	case domain.KindDatetime:
		return formatTime(c.Times[i])
	case domain.KindInt:
		return strconv.FormatInt(c.Ints[i], 10)
	case domain.KindFloat:
		return formatFloat(c.Floats[i])
	case domain.KindBool:
		if c.Bools[i] {
			return "True"
		}
		return "False"
	default:
		return c.Strings[i]
	}
}
