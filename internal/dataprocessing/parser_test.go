package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "dataopscli/internal/errors"
	"dataopscli/internal/shared/testutil"
	"dataopscli/pkg/contracts/domain"
)

func TestReadCSV_SensorTable(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(testutil.SensorCSV), DefaultLoadOptions())
	require.NoError(t, err)

	assert.Equal(t, 6, table.NumRows())
	assert.Equal(t, []string{"timestamp", "machine_id", "temperature", "vibration", "pressure"}, table.ColumnNames())

	kinds := map[string]domain.ColumnKind{
		"timestamp":   domain.KindDatetime,
		"machine_id":  domain.KindString,
		"temperature": domain.KindFloat,
		"vibration":   domain.KindInt,
		"pressure":    domain.KindFloat,
	}
	for name, kind := range kinds {
		col, err := table.Column(name)
		require.NoError(t, err)
		assert.Equal(t, kind, col.Kind, name)
	}

	vib, err := table.Column("vibration")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 100}, vib.Ints)
}

func TestReadCSV_MissingCells(t *testing.T) {
	input := testutil.CSVFromRows(
		[]string{"timestamp", "machine_id", "temperature", "vibration"},
		[]string{"2024-01-01 00:00:00", "M1", "", "1.5"},
		[]string{"", "M2", "NaN", "2"},
		[]string{"not a time", "M3", "7"},
	)

	table, err := ReadCSV(strings.NewReader(input), DefaultLoadOptions())
	require.NoError(t, err)
	require.Equal(t, 3, table.NumRows())

	ts, _ := table.Column("timestamp")
	assert.Equal(t, 2, ts.NullCount())
	assert.Equal(t, 1, ts.Unparsed)

	temp, _ := table.Column("temperature")
	assert.Equal(t, domain.KindFloat, temp.Kind)
	assert.Equal(t, 2, temp.NullCount())

	// short rows are padded with missing cells
	vib, _ := table.Column("vibration")
	values, err := vib.Float64s()
	require.NoError(t, err)
	assert.Equal(t, 1.5, values[0])
	assert.True(t, math.IsNaN(values[2]))
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType apperrors.ErrorType
	}{
		{name: "empty input", input: "", wantType: apperrors.ErrTypeParsing},
		{name: "row longer than header", input: "a,b\n1,2,3\n", wantType: apperrors.ErrTypeParsing},
		{name: "unterminated quote", input: "a,b\n\"1,2\n", wantType: apperrors.ErrTypeParsing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input), DefaultLoadOptions())
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType), "got %v", err)
		})
	}
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("timestamp,machine_id,temperature,vibration\n"), DefaultLoadOptions())
	require.NoError(t, err)
	assert.Zero(t, table.NumRows())
	assert.Equal(t, 4, table.NumCols())
}

func TestReadCSV_DelimiterAndBOM(t *testing.T) {
	input := "\ufefftimestamp;vibration\n2024-01-01 00:00:00;1,5\n"
	table, err := ReadCSV(strings.NewReader(input), LoadOptions{Delimiter: ';', TimestampColumn: "timestamp"})
	require.NoError(t, err)

	assert.Equal(t, []string{"timestamp", "vibration"}, table.ColumnNames())
	vib, _ := table.Column("vibration")
	assert.Equal(t, domain.KindString, vib.Kind)
	assert.Equal(t, "1,5", vib.Strings[0])
}

func TestLoader_Load(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	loader := NewLoader(logger, LoadOptions{})

	t.Run("csv file", func(t *testing.T) {
		path := testutil.WriteFile(t, "iot_maintenance_data.csv", testutil.SensorCSV)
		table, err := loader.Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 6, table.NumRows())
		testutil.AssertLogContains(t, handler, slog.LevelInfo, "Table loaded")
	})

	t.Run("workbook", func(t *testing.T) {
		path := testutil.WriteWorkbook(t, "readings.xlsx",
			[]any{"timestamp", "machine_id", "temperature", "vibration"},
			[]any{"2024-01-01 00:00:00", "M1", 20.5, 1},
			[]any{"2024-01-01 01:00:00", "M2", -5, 100},
		)
		table, err := loader.Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 2, table.NumRows())

		ts, _ := table.Column("timestamp")
		assert.Equal(t, domain.KindDatetime, ts.Kind)
		assert.Zero(t, ts.NullCount())
	})

	t.Run("warns on unparseable timestamps", func(t *testing.T) {
		handler.Clear()
		path := testutil.WriteFile(t, "bad.csv", "timestamp,v\nsoon,1\n")
		_, err := loader.Load(context.Background(), path)
		require.NoError(t, err)
		testutil.AssertLogContains(t, handler, slog.LevelWarn, "Unparseable timestamps")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "iot_maintenance_data.csv"))
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIO))
	})

	t.Run("malformed csv is logged", func(t *testing.T) {
		handler.Clear()
		path := testutil.WriteFile(t, "broken.csv", "a,b\n1,2,3\n")
		_, err := loader.Load(context.Background(), path)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
		testutil.AssertLogContains(t, handler, slog.LevelError, "Failed to load table")
	})
}

func TestLoadCSV_Compressed(t *testing.T) {
	for _, name := range []string{"iot_maintenance_data.csv.gz", "iot_maintenance_data.csv.zst", "iot_maintenance_data.csv.sz"} {
		t.Run(name, func(t *testing.T) {
			path := testutil.WriteCompressed(t, name, testutil.SensorCSV)

			table, err := LoadCSV(path, DefaultLoadOptions())
			require.NoError(t, err)
			assert.Equal(t, 6, table.NumRows())

			vib, err := table.Column("vibration")
			require.NoError(t, err)
			assert.Equal(t, []int64{1, 2, 3, 4, 5, 100}, vib.Ints)
		})
	}
}

func TestLoadCSV_CorruptGzip(t *testing.T) {
	path := testutil.WriteFile(t, "iot_maintenance_data.csv.gz", testutil.SensorCSV)

	_, err := LoadCSV(path, DefaultLoadOptions())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "gzip")
}
