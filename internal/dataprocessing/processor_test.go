package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "dataopscli/internal/errors"
	"dataopscli/pkg/contracts/domain"
)

func TestProjectAssetView(t *testing.T) {
	table := loadSensorTable(t)

	view, err := ProjectAssetView(table)
	require.NoError(t, err)

	assert.Equal(t, []string{"timestamp", "asset_id", "temperature_c"}, view.ColumnNames())
	assert.Equal(t, table.NumRows(), view.NumRows())

	machines, _ := table.Column("machine_id")
	assets, _ := view.Column("asset_id")
	temps, _ := table.Column("temperature")
	tempsC, _ := view.Column("temperature_c")
	for i := 0; i < table.NumRows(); i++ {
		assert.Equal(t, machines.Value(i), assets.Value(i), "row %d", i)
		assert.Equal(t, temps.Value(i), tempsC.Value(i), "row %d", i)
		assert.Equal(t, table.RowLabel(i), view.RowLabel(i))
	}

	srcTS, _ := table.Column("timestamp")
	viewTS, _ := view.Column("timestamp")
	assert.Equal(t, srcTS.Kind, viewTS.Kind)
	assert.Equal(t, domain.KindString, assets.Kind)
	assert.Equal(t, domain.KindFloat, tempsC.Kind)

	// source table untouched
	assert.Equal(t, 5, table.NumCols())
	_, err = table.Column("asset_id")
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestProjectAssetView_MissingColumn(t *testing.T) {
	table, err := domain.NewTable(
		domain.NewStringColumn("machine_id", []string{"M1"}),
		domain.NewFloatColumn("temperature", []float64{1}),
	)
	require.NoError(t, err)

	_, err = ProjectAssetView(table)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestProject_RenameOfUnselectedColumn(t *testing.T) {
	table := loadSensorTable(t)

	_, err := Project(table, []string{"timestamp"}, map[string]string{"vibration": "vib"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
}
