package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// QualityMetrics holds the data-quality instruments
type QualityMetrics struct {
	RowsLoaded    metric.Int64Counter
	FlaggedRows   metric.Int64Counter
	FenceValue    metric.Float64Gauge
	StageDuration metric.Float64Histogram
	StageErrors   metric.Int64Counter
}

// CreateQualityMetrics creates the data-quality metrics on meter
func CreateQualityMetrics(meter metric.Meter) (*QualityMetrics, error) {
	rowsLoaded, err := meter.Int64Counter(
		"dataops_rows_loaded_total",
		metric.WithDescription("Total number of observation rows loaded"),
	)
	if err != nil {
		return nil, err
	}

	flaggedRows, err := meter.Int64Counter(
		"dataops_flagged_rows_total",
		metric.WithDescription("Total number of rows flagged by a quality check"),
	)
	if err != nil {
		return nil, err
	}

	fenceValue, err := meter.Float64Gauge(
		"dataops_iqr_fence",
		metric.WithDescription("Most recent IQR fence of a column"),
	)
	if err != nil {
		return nil, err
	}

	stageDuration, err := meter.Float64Histogram(
		"dataops_stage_duration_seconds",
		metric.WithDescription("Stage execution duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	stageErrors, err := meter.Int64Counter(
		"dataops_stage_errors_total",
		metric.WithDescription("Total number of failed stage runs"),
	)
	if err != nil {
		return nil, err
	}

	return &QualityMetrics{
		RowsLoaded:    rowsLoaded,
		FlaggedRows:   flaggedRows,
		FenceValue:    fenceValue,
		StageDuration: stageDuration,
		StageErrors:   stageErrors,
	}, nil
}

// RecordRowsLoaded records the size of a loaded table
func (m *QualityMetrics) RecordRowsLoaded(ctx context.Context, stage string, rows int) {
	if m == nil {
		return
	}
	m.RowsLoaded.Add(ctx, int64(rows), metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordFlagged records the number of rows a check flagged on a column
func (m *QualityMetrics) RecordFlagged(ctx context.Context, check, column string, flagged int) {
	if m == nil {
		return
	}
	m.FlaggedRows.Add(ctx, int64(flagged), metric.WithAttributes(
		attribute.String("check", check),
		attribute.String("column", column),
	))
}

// RecordFences records the lower and upper IQR fences of a column
func (m *QualityMetrics) RecordFences(ctx context.Context, column string, lower, upper float64) {
	if m == nil {
		return
	}
	col := attribute.String("column", column)
	m.FenceValue.Record(ctx, lower, metric.WithAttributes(col, attribute.String("fence", "lower")))
	m.FenceValue.Record(ctx, upper, metric.WithAttributes(col, attribute.String("fence", "upper")))
}

// RecordStage records a stage run's duration and outcome
func (m *QualityMetrics) RecordStage(ctx context.Context, stage string, duration time.Duration, err error) {
	if m == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failure"
		m.StageErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
	}
	m.StageDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("status", status),
	))
}
