package dataprocessing

import (
	"dataopscli/internal/config"
	apperrors "dataopscli/internal/errors"
	"dataopscli/pkg/contracts/domain"
)

// ProjectAssetView keeps timestamp, machine_id and temperature and renames
// them to timestamp, asset_id and temperature_c. Rows and values are
// shared with the source table.
func ProjectAssetView(t *domain.Table) (*domain.Table, error) {
	return Project(t, config.ProjectedColumns, config.AssetRenames)
}

// Project selects columns in order and then applies renames.
// An absent column in either step is a SCHEMA error.
func Project(t *domain.Table, columns []string, renames map[string]string) (*domain.Table, error) {
	selected, err := t.Select(columns...)
	if err != nil {
		return nil, apperrors.NewSchemaError("projection failed", err).
			WithContext("columns", columns)
	}

	renamed, err := selected.Rename(renames)
	if err != nil {
		return nil, apperrors.NewSchemaError("rename failed", err).
			WithContext("renames", renames)
	}
	return renamed, nil
}
