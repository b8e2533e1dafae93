package app

import (
	"context"
	"log/slog"
	"strings"

	"dataopscli/internal/dataprocessing"
	apperrors "dataopscli/internal/errors"
	"dataopscli/internal/exporter"
	"dataopscli/internal/quality"
	"dataopscli/pkg/contracts/domain"
)

// Stage names used for spans, metrics and log components
const (
	StageLoad      = "load"
	StageClean     = "clean"
	StageTransform = "transform"
)

// RunLoading reads the input and prints its shape, preview, column listing
// and summary statistics
func (a *Application) RunLoading(ctx context.Context) error {
	rw := exporter.NewReportWriter(a.Stdout)
	rw.Banner("Loading IoT Maintenance Data...")

	table, err := a.LoadTable(ctx, StageLoad)
	if err != nil {
		return err
	}

	rw.Shape(table)
	rw.Section("FIRST 5 ROWS OF THE DATASET")
	rw.Head(table)
	rw.Section("COLUMN NAMES AND DATA TYPES")
	rw.Info(dataprocessing.Info(table))
	rw.Section("DESCRIPTIVE STATISTICS")
	rw.Describe(dataprocessing.Describe(table))
	rw.Section("DATA LOADING COMPLETE - Ready for Data Cleaning Phase")

	return reportError(rw)
}

// RunCleaning reads the input, runs the quality checks and prints the
// asset projection
func (a *Application) RunCleaning(ctx context.Context) error {
	rw := exporter.NewReportWriter(a.Stdout)
	rw.Banner("Loading IoT Maintenance Data for Cleaning...")

	table, err := a.LoadTable(ctx, StageClean)
	if err != nil {
		return err
	}
	rw.Shape(table)

	checker := quality.NewChecker(a.Logger, a.OTelProviders.Tracer, a.Metrics)
	report, err := checker.Run(ctx, table)
	if err != nil {
		return err
	}

	rw.Section("TIMESTAMP INTEGRITY CHECK")
	rw.TimestampCheck(report.Timestamps)

	rangeRows, err := table.Take(report.Range.Indices)
	if err != nil {
		return err
	}
	rw.Section("TEMPERATURE RANGE CHECK")
	rw.RangeCheck(report.Range, rangeRows)

	outlierRows, err := table.Take(report.Outliers.Indices)
	if err != nil {
		return err
	}
	rw.Section("VIBRATION OUTLIER DETECTION (IQR METHOD)")
	rw.OutlierCheck(report.Outliers, outlierRows)

	if err := a.writeChart(ctx, table, report.Outliers); err != nil {
		return err
	}

	var projected *domain.Table
	err = a.RunStage(ctx, StageTransform, func(ctx context.Context) error {
		projected, err = dataprocessing.ProjectAssetView(table)
		return err
	})
	if err != nil {
		return err
	}
	a.Logger.InfoContext(ctx, "Asset view projected",
		slog.Int("rows", projected.NumRows()),
		slog.String("columns", strings.Join(projected.ColumnNames(), ",")))

	rw.Section("DATA TRANSFORMATION")
	rw.Line("Created transformed_data table with columns: %s", strings.Join(projected.ColumnNames(), ", "))
	rw.Section("TRANSFORMED DATA - FIRST 5 ROWS")
	rw.Head(projected)
	rw.Section("TRANSFORMED DATA - DATA TYPES")
	rw.Dtypes(projected)
	rw.Section("DATA CLEANING COMPLETE")

	return reportError(rw)
}

// writeChart saves the outlier box plot when a chart path is configured
func (a *Application) writeChart(ctx context.Context, table *domain.Table, res quality.OutlierResult) error {
	if a.Config.Report.ChartPath == "" {
		return nil
	}
	values, err := quality.NumericValues(table, res.Column)
	if err != nil {
		return err
	}
	path := a.Paths.ResolveInput(a.Config.Report.ChartPath)
	if err := exporter.WriteOutlierChart(path, values, res); err != nil {
		return err
	}
	a.Logger.InfoContext(ctx, "Outlier chart written",
		slog.String("column", res.Column),
		slog.String("file", path))
	return nil
}

func reportError(rw *exporter.ReportWriter) error {
	if err := rw.Err(); err != nil {
		return apperrors.NewIOError("failed to write report", err)
	}
	return nil
}
