// Command cleaner reads the sensor dataset, runs the timestamp, temperature
// range and vibration outlier checks, and prints the asset projection.
//
// The report goes to stdout; logs go to stderr unless DATAOPS_LOGGING_OUTPUT
// says otherwise. The process exits 1 on any error.
package main

import (
	"io"
	"log/slog"
	"os"

	"dataopscli/internal/app"
	"dataopscli/internal/config"
	"dataopscli/internal/infrastructure"
)

func main() {
	if err := run(os.Stdout); err != nil {
		os.Exit(1)
	}
}

func run(stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		return err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", slog.String("error", err.Error()))
		return err
	}
	defer infrastructure.CloseLogFile()

	application, err := app.NewApplication(cfg, logger, stdout)
	if err != nil {
		logger.Error("Failed to initialize application", slog.String("error", err.Error()))
		return err
	}

	return application.Run(app.StageClean, application.RunCleaning)
}
