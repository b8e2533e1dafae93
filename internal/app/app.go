package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"dataopscli/internal/config"
	"dataopscli/internal/dataprocessing"
	apperrors "dataopscli/internal/errors"
	"dataopscli/internal/infrastructure"
	"dataopscli/pkg/contracts"
	"dataopscli/pkg/contracts/domain"
)

// shutdownTimeout bounds the telemetry flush at the end of a run
const shutdownTimeout = 5 * time.Second

// StageFunc is the body of one stage
type StageFunc func(ctx context.Context) error

// Application represents one run of an executable
type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	Paths         *config.Paths
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.QualityMetrics
	Stdout        io.Writer // receives the report
}

// NewApplication creates the application container. Paths are rooted at the
// working directory.
func NewApplication(cfg *config.Config, logger *slog.Logger, stdout io.Writer) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	paths, err := config.GetPaths()
	if err != nil {
		return nil, apperrors.NewIOError("failed to resolve paths", err)
	}

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.NewOTelConfig(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics, err := infrastructure.CreateQualityMetrics(otelProviders.Meter)
	if err != nil {
		_ = otelProviders.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to create quality metrics: %w", err)
	}

	return &Application{
		Config:        cfg,
		Logger:        logger,
		Paths:         paths,
		OTelProviders: otelProviders,
		Metrics:       metrics,
		Stdout:        stdout,
	}, nil
}

// Run executes fn as the named stage under a fresh run id, then shuts
// telemetry down. The stage error, if any, is logged and returned.
func (a *Application) Run(stage string, fn StageFunc) error {
	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger := infrastructure.WithComponent(a.Logger, stage)

	version := contracts.GetVersionInfo()
	logger.InfoContext(ctx, "Stage starting",
		slog.String("name", config.AppName),
		slog.String("version", version.Version),
		slog.String("commit", version.GitCommit),
		slog.String("input", a.Config.Input.Path))

	err := a.RunStage(ctx, stage, fn)

	if stopErr := a.Stop(ctx); stopErr != nil {
		logger.WarnContext(ctx, "Telemetry shutdown failed", slog.String("error", stopErr.Error()))
	}

	if err != nil {
		var attrs []any
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			attrs = append(attrs, slog.String("error_type", string(appErr.Type)))
		}
		infrastructure.WithError(logger, err).ErrorContext(ctx, "Stage failed", attrs...)
		return err
	}

	logger.InfoContext(ctx, "Stage complete")
	return nil
}

// RunStage runs fn inside a span and records its duration and outcome.
// ctx gets a run id when it has none.
func (a *Application) RunStage(ctx context.Context, name string, fn StageFunc) error {
	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := a.OTelProviders.Tracer.Start(ctx, name,
		trace.WithAttributes(attribute.String("stage", name)))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	a.Metrics.RecordStage(ctx, name, elapsed, err)
	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{
		"run_id":      infrastructure.GetTraceID(ctx),
		"duration_ms": elapsed.Milliseconds(),
	})

	if err != nil {
		infrastructure.RecordError(ctx, err)
	}
	return err
}

// LoadTable reads the configured input file into a table
func (a *Application) LoadTable(ctx context.Context, stage string) (*domain.Table, error) {
	opts := dataprocessing.DefaultLoadOptions()
	opts.Delimiter = a.Config.Input.DelimiterRune()

	table, err := dataprocessing.NewLoader(a.Logger, opts).Load(ctx, a.InputPath())
	if err != nil {
		return nil, err
	}
	a.Metrics.RecordRowsLoaded(ctx, stage, table.NumRows())
	return table, nil
}

// InputPath returns the configured input resolved against the working directory
func (a *Application) InputPath() string {
	return a.Paths.ResolveInput(a.Config.Input.Path)
}

// Stop flushes telemetry
func (a *Application) Stop(ctx context.Context) error {
	if a.OTelProviders == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return a.OTelProviders.Shutdown(ctx)
}
