package dataprocessing

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataopscli/internal/shared/testutil"
	"dataopscli/pkg/contracts/domain"
)

func loadSensorTable(t *testing.T) *domain.Table {
	t.Helper()
	table, err := ReadCSV(strings.NewReader(testutil.SensorCSV), DefaultLoadOptions())
	require.NoError(t, err)
	return table
}

func TestInfo(t *testing.T) {
	info := Info(loadSensorTable(t))

	assert.Equal(t, 6, info.Rows)
	require.Len(t, info.Columns, 5)
	assert.Equal(t, ColumnInfo{Position: 2, Name: "temperature", NonNull: 6, Kind: domain.KindFloat}, info.Columns[2])

	assert.Equal(t, map[domain.ColumnKind]int{
		domain.KindDatetime: 1,
		domain.KindFloat:    2,
		domain.KindInt:      1,
		domain.KindString:   1,
	}, info.KindCounts)
	assert.Equal(t, []domain.ColumnKind{domain.KindDatetime, domain.KindFloat, domain.KindInt, domain.KindString}, info.Kinds())
}

func TestDescribe_Numeric(t *testing.T) {
	d := Describe(loadSensorTable(t))

	require.Len(t, d.Numeric, 3)
	assert.Equal(t, []string{"temperature", "vibration", "pressure"},
		[]string{d.Numeric[0].Column, d.Numeric[1].Column, d.Numeric[2].Column})

	vib := d.Numeric[1]
	assert.Equal(t, 6, vib.Count)
	assert.InDelta(t, 19.166666666666668, vib.Mean, 1e-9)
	assert.InDelta(t, 39.62532860010963, vib.Std, 1e-9)
	assert.Equal(t, 1.0, vib.Min)
	assert.InDelta(t, 2.25, vib.Q25, 1e-12)
	assert.InDelta(t, 3.5, vib.Q50, 1e-12)
	assert.InDelta(t, 4.75, vib.Q75, 1e-12)
	assert.Equal(t, 100.0, vib.Max)

	temp := d.Numeric[0]
	assert.InDelta(t, 11.833333333333334, temp.Mean, 1e-9)
	assert.InDelta(t, 12.174180328328749, temp.Std, 1e-9)
	assert.Equal(t, -5.0, temp.Min)
}

func TestDescribe_MissingAndEmpty(t *testing.T) {
	table, err := domain.NewTable(
		domain.NewFloatColumn("sparse", []float64{math.NaN(), 4, math.NaN()}),
		domain.NewFloatColumn("empty", []float64{math.NaN(), math.NaN(), math.NaN()}),
		domain.NewStringColumn("label", []string{"a", "b", "c"}),
	)
	require.NoError(t, err)

	d := Describe(table)
	require.Len(t, d.Numeric, 2)

	sparse := d.Numeric[0]
	assert.Equal(t, 1, sparse.Count)
	assert.Equal(t, 4.0, sparse.Mean)
	assert.True(t, math.IsNaN(sparse.Std), "std of one value is undefined")
	assert.Equal(t, 4.0, sparse.Q50)

	empty := d.Numeric[1]
	assert.Zero(t, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
	assert.True(t, math.IsNaN(empty.Max))

	assert.Empty(t, d.Times)
}

func TestDescribe_Times(t *testing.T) {
	d := Describe(loadSensorTable(t))
	require.Len(t, d.Times, 1)

	ts := d.Times[0]
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "timestamp", ts.Column)
	assert.Equal(t, 6, ts.Count)
	assert.True(t, ts.Min.Equal(t0))
	assert.True(t, ts.Max.Equal(t0.Add(5*time.Hour)))
	assert.True(t, ts.Mean.Equal(t0.Add(150*time.Minute)), "mean %s", ts.Mean)
	assert.True(t, ts.Q25.Equal(t0.Add(75*time.Minute)), "q25 %s", ts.Q25)
	assert.True(t, ts.Q50.Equal(t0.Add(150*time.Minute)))
	assert.True(t, ts.Q75.Equal(t0.Add(225*time.Minute)))
}

func TestDescribe_TimesBeyondDurationRange(t *testing.T) {
	mid := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	const span = 300 * 365 * 24 * 3600
	early := time.Unix(mid.Unix()-span, 0).UTC()
	late := time.Unix(mid.Unix()+span, 0).UTC()
	table, err := domain.NewTable(domain.NewTimeColumn("timestamp", []time.Time{late, early}))
	require.NoError(t, err)

	ts := Describe(table).Times[0]
	assert.True(t, ts.Min.Equal(early))
	assert.True(t, ts.Max.Equal(late))
	assert.WithinDuration(t, mid, ts.Q50, time.Millisecond)
	assert.WithinDuration(t, mid, ts.Mean, time.Millisecond)
	assert.True(t, ts.Q25.After(early) && ts.Q25.Before(mid), "q25 %s", ts.Q25)
}

func TestNanosSince_RoundTrip(t *testing.T) {
	origin := time.Date(2024, 1, 1, 0, 0, 0, 500, time.UTC)
	later := origin.Add(90*time.Minute + 250*time.Nanosecond)

	offset := nanosSince(origin, later)
	assert.Equal(t, float64(90*time.Minute+250), offset)
	assert.True(t, addNanos(origin, offset).Equal(later))
	assert.True(t, addNanos(origin, 0).Equal(origin))
}

func TestDescribe_EmptyTimes(t *testing.T) {
	table, err := domain.NewTable(domain.NewTimeColumn("timestamp", []time.Time{{}, {}}))
	require.NoError(t, err)

	d := Describe(table)
	require.Len(t, d.Times, 1)
	assert.Zero(t, d.Times[0].Count)
	assert.True(t, d.Times[0].Mean.IsZero())
}
