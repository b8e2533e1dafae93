// Package config provides configuration management for the data-quality
// executables. It loads ambient settings (logging, telemetry, input location)
// and holds the fixed constants of the checks.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (config.yaml or configs/config.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern DATAOPS_* for namespacing:
//
//	DATAOPS_LOGGING_LEVEL=debug
//	DATAOPS_LOGGING_OUTPUT=both
//	DATAOPS_INPUT_PATH=/data/iot_maintenance_data.csv
//	DATAOPS_TELEMETRY_TRACE_EXPORTER=stdout
//	DATAOPS_TELEMETRY_METRICS_TEXTFILE=/var/lib/node_exporter/dataops.prom
//	DATAOPS_REPORT_CHART_PATH=vibration.png
//
// # Constants
//
// Check thresholds (MinTemperatureC, IQRMultiplier), the quartiles, column
// names and the projection rename map live in constants.go and are not
// configurable.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	paths, _ := config.GetPaths()
//	input := paths.ResolveInput(cfg.Input.Path)
package config
