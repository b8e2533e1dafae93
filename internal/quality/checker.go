package quality

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"dataopscli/internal/config"
	apperrors "dataopscli/internal/errors"
	"dataopscli/internal/infrastructure"
	"dataopscli/pkg/contracts/domain"
)

// Check names used in logs, spans and metrics
const (
	CheckNameTimestamps = "timestamps"
	CheckNameRange      = "range"
	CheckNameOutliers   = "iqr"
)

// Recorder receives check outcomes for metrics export
type Recorder interface {
	RecordFlagged(ctx context.Context, check, column string, flagged int)
	RecordFences(ctx context.Context, column string, lower, upper float64)
}

// Report is the outcome of every check on one table
type Report struct {
	Rows       int
	Timestamps TimestampResult
	Range      RangeResult
	Outliers   OutlierResult
}

// Checker runs the quality checks over an observation table
type Checker struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	recorder Recorder
}

// NewChecker creates a checker. A nil tracer disables spans and a nil
// recorder disables metrics.
func NewChecker(logger *slog.Logger, tracer trace.Tracer, recorder Recorder) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("quality")
	}
	return &Checker{
		logger:   logger,
		tracer:   tracer,
		recorder: recorder,
	}
}

// Run validates the schema and then runs the timestamp, range and outlier
// checks in that order. Any failure aborts the run.
func (c *Checker) Run(ctx context.Context, table *domain.Table) (*Report, error) {
	if err := RequireColumns(table, config.RequiredColumns...); err != nil {
		return nil, err
	}

	report := &Report{Rows: table.NumRows()}

	ts, err := table.Column(config.ColumnTimestamp)
	if err != nil {
		return nil, apperrors.NewSchemaError("timestamp column", err)
	}
	c.inSpan(ctx, CheckNameTimestamps, config.ColumnTimestamp, func(ctx context.Context) error {
		report.Timestamps = CheckTimestamps(ts)
		c.logger.InfoContext(ctx, "Timestamp integrity checked",
			slog.String("column", ts.Name),
			slog.String("kind", string(ts.Kind)),
			slog.Int("nulls", report.Timestamps.NullCount),
			slog.Int("unparsed", report.Timestamps.Unparsed))
		c.recordFlagged(ctx, CheckNameTimestamps, ts.Name, report.Timestamps.NullCount)
		return nil
	})

	err = c.inSpan(ctx, CheckNameRange, config.ColumnTemperature, func(ctx context.Context) error {
		values, err := NumericValues(table, config.ColumnTemperature)
		if err != nil {
			return err
		}
		report.Range = CheckRange(values, config.MinTemperatureC)
		report.Range.Column = config.ColumnTemperature
		c.logger.InfoContext(ctx, "Range validated",
			slog.String("column", config.ColumnTemperature),
			slog.Float64("threshold", config.MinTemperatureC),
			slog.Int("flagged", report.Range.Count()))
		c.recordFlagged(ctx, CheckNameRange, config.ColumnTemperature, report.Range.Count())
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = c.inSpan(ctx, CheckNameOutliers, config.ColumnVibration, func(ctx context.Context) error {
		values, err := NumericValues(table, config.ColumnVibration)
		if err != nil {
			return err
		}
		result, err := DetectOutliers(values)
		if err != nil {
			return fmt.Errorf("outlier detection on %s: %w", config.ColumnVibration, err)
		}
		result.Column = config.ColumnVibration
		report.Outliers = result

		b := result.Bounds
		c.logger.InfoContext(ctx, "Outliers detected",
			slog.String("column", config.ColumnVibration),
			slog.Float64("q1", b.Q1),
			slog.Float64("q3", b.Q3),
			slog.Float64("iqr", b.IQR),
			slog.Float64("lower", b.Lower),
			slog.Float64("upper", b.Upper),
			slog.Int("observations", b.N),
			slog.Int("flagged", result.Count()))
		c.recordFlagged(ctx, CheckNameOutliers, config.ColumnVibration, result.Count())
		if c.recorder != nil {
			c.recorder.RecordFences(ctx, config.ColumnVibration, b.Lower, b.Upper)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// inSpan runs fn inside a child span named after the check
func (c *Checker) inSpan(ctx context.Context, check, column string, fn func(context.Context) error) error {
	ctx, span := c.tracer.Start(ctx, "quality."+check,
		trace.WithAttributes(attribute.String("column", column)))
	defer span.End()

	if err := fn(ctx); err != nil {
		infrastructure.RecordError(ctx, err)
		return err
	}
	return nil
}

func (c *Checker) recordFlagged(ctx context.Context, check, column string, n int) {
	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{"flagged": n})
	if c.recorder != nil {
		c.recorder.RecordFlagged(ctx, check, column, n)
	}
}

// RequireColumns returns a SCHEMA error naming every absent column
func RequireColumns(table *domain.Table, names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := table.Column(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return apperrors.NewSchemaError(
		fmt.Sprintf("required column missing: %s", strings.Join(missing, ", ")), domain.ErrColumnNotFound).
		WithContext("missing", missing).
		WithContext("available", table.ColumnNames())
}

// NumericValues returns a column as float64 with NaN at null rows.
// A missing column is a SCHEMA error and a non-numeric one a PARSING error.
func NumericValues(table *domain.Table, name string) ([]float64, error) {
	col, err := table.Column(name)
	if err != nil {
		return nil, apperrors.NewSchemaError(fmt.Sprintf("required column missing: %s", name), err).
			WithContext("column", name)
	}
	values, err := col.Float64s()
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("column %s holds non-numeric data", name), err).
			WithContext("column", name).
			WithContext("kind", string(col.Kind))
	}
	return values, nil
}
