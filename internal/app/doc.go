// Package app wires configuration, logging, telemetry and metrics into an
// Application and runs the loading and cleaning stages on it.
//
// # Initialization Flow
//
// Each executable follows the same sequence:
//
//	1. Load configuration from defaults, config.yaml and DATAOPS_* variables
//	2. Initialize the logger
//	3. Create the Application (paths, OpenTelemetry, quality metrics)
//	4. Run one stage under a fresh run id
//	5. Shut telemetry down, writing the metrics textfile when configured
//
// # Stages
//
// RunLoading prints the dataset overview. RunCleaning runs the quality
// checks and the asset projection. Both write the report to
// Application.Stdout and diagnostics to the logger.
package app
