package dataprocessing

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"dataopscli/internal/quality"
	"dataopscli/pkg/contracts/domain"
)

// ColumnInfo is one entry of a table's column listing
type ColumnInfo struct {
	Position int
	Name     string
	NonNull  int
	Kind     domain.ColumnKind
}

// TableInfo lists a table's columns, their non-null counts and kinds
type TableInfo struct {
	Rows    int
	Columns []ColumnInfo

	// KindCounts counts columns per kind
	KindCounts map[domain.ColumnKind]int
}

// Kinds returns the kinds present in KindCounts, sorted by name
func (i TableInfo) Kinds() []domain.ColumnKind {
	kinds := make([]domain.ColumnKind, 0, len(i.KindCounts))
	for k := range i.KindCounts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(a, b int) bool { return kinds[a] < kinds[b] })
	return kinds
}

// Info summarizes the structure of a table
func Info(t *domain.Table) TableInfo {
	info := TableInfo{
		Rows:       t.NumRows(),
		Columns:    make([]ColumnInfo, 0, t.NumCols()),
		KindCounts: make(map[domain.ColumnKind]int),
	}
	for i, c := range t.Columns() {
		info.Columns = append(info.Columns, ColumnInfo{
			Position: i,
			Name:     c.Name,
			NonNull:  c.NonNullCount(),
			Kind:     c.Kind,
		})
		info.KindCounts[c.Kind]++
	}
	return info
}

// NumericSummary holds the descriptive statistics of a numeric column.
// Std is the sample standard deviation; statistics of an empty column are NaN.
type NumericSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Q50    float64
	Q75    float64
	Max    float64
}

// TimeSummary holds the descriptive statistics of a datetime column.
// All instants are zero when the column has no values.
type TimeSummary struct {
	Column string
	Count  int
	Mean   time.Time
	Min    time.Time
	Q25    time.Time
	Q50    time.Time
	Q75    time.Time
	Max    time.Time
}

// Description holds summaries of every numeric and datetime column in table order
type Description struct {
	Numeric []NumericSummary
	Times   []TimeSummary
}

// Describe computes summary statistics over the non-null cells of every
// numeric and datetime column
func Describe(t *domain.Table) Description {
	var d Description
	for _, c := range t.Columns() {
		switch {
		case c.Kind.IsNumeric():
			d.Numeric = append(d.Numeric, describeNumeric(c))
		case c.Kind == domain.KindDatetime:
			d.Times = append(d.Times, describeTimes(c))
		}
	}
	return d
}

func describeNumeric(c *domain.Column) NumericSummary {
	values, _ := c.Float64s()
	sorted := quality.SortedNonMissing(values)

	s := NumericSummary{Column: c.Name, Count: len(sorted)}
	if len(sorted) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	s.Mean = stat.Mean(sorted, nil)
	s.Std = stat.StdDev(sorted, nil)
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Q25 = quality.Quantile(sorted, 0.25)
	s.Q50 = quality.Quantile(sorted, 0.5)
	s.Q75 = quality.Quantile(sorted, 0.75)
	return s
}

// describeTimes works on nanosecond offsets from the earliest instant so
// float64 keeps sub-microsecond precision
func describeTimes(c *domain.Column) TimeSummary {
	var times []time.Time
	for i, ts := range c.Times {
		if c.Valid[i] {
			times = append(times, ts)
		}
	}

	s := TimeSummary{Column: c.Name, Count: len(times)}
	if len(times) == 0 {
		return s
	}

	sort.Slice(times, func(a, b int) bool { return times[a].Before(times[b]) })
	origin := times[0]
	offsets := make([]float64, len(times))
	for i, ts := range times {
		offsets[i] = nanosSince(origin, ts)
	}

	at := func(offset float64) time.Time {
		return addNanos(origin, offset)
	}
	s.Mean = at(stat.Mean(offsets, nil))
	s.Min = origin
	s.Max = times[len(times)-1]
	s.Q25 = at(quality.Quantile(offsets, 0.25))
	s.Q50 = at(quality.Quantile(offsets, 0.5))
	s.Q75 = at(quality.Quantile(offsets, 0.75))
	return s
}

// nanosSince is ts-origin in nanoseconds. Unlike time.Sub it does not
// saturate for spans beyond the range of time.Duration.
func nanosSince(origin, ts time.Time) float64 {
	secs := ts.Unix() - origin.Unix()
	nanos := ts.Nanosecond() - origin.Nanosecond()
	return float64(secs)*1e9 + float64(nanos)
}

// addNanos is the inverse of nanosSince
func addNanos(origin time.Time, offset float64) time.Time {
	secs := math.Floor(offset / 1e9)
	nanos := math.Round(offset - secs*1e9)
	return time.Unix(origin.Unix()+int64(secs), int64(origin.Nanosecond())+int64(nanos)).UTC()
}
