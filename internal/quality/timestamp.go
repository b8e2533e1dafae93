package quality

import "dataopscli/pkg/contracts/domain"

// TimestampResult describes the integrity of a timestamp column
type TimestampResult struct {
	Column string
	Kind   domain.ColumnKind

	// IsDatetime is true when the column was parsed as instants
	IsDatetime bool

	// NullCount counts empty cells and cells no layout could parse
	NullCount int

	// Unparsed counts non-empty cells that failed to parse
	Unparsed int
}

// Parsed reports whether every non-empty cell became an instant
func (r TimestampResult) Parsed() bool {
	return r.IsDatetime && r.Unparsed == 0
}

// CheckTimestamps confirms the column kind and counts its null rows
func CheckTimestamps(col *domain.Column) TimestampResult {
	return TimestampResult{
		Column:     col.Name,
		Kind:       col.Kind,
		IsDatetime: col.Kind == domain.KindDatetime,
		NullCount:  col.NullCount(),
		Unparsed:   col.Unparsed,
	}
}
