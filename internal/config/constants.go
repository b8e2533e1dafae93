package config

// Application constants. Thresholds and column names are fixed at compile
// time; nothing here is read from the environment.
const (
	// Application Info
	AppName    = "Industrial DataOps"
	AppVersion = "1.0.0"

	// DefaultInputFile is the sensor dataset read by both stages
	DefaultInputFile = "iot_maintenance_data.csv"

	// Required columns of the observation table
	ColumnTimestamp   = "timestamp"
	ColumnMachineID   = "machine_id"
	ColumnTemperature = "temperature"
	ColumnVibration   = "vibration"

	// Columns produced by the asset projection
	ColumnAssetID      = "asset_id"
	ColumnTemperatureC = "temperature_c"

	// MinTemperatureC is the lowest physically valid temperature reading
	MinTemperatureC = 0.0

	// IQRMultiplier scales the interquartile range into Tukey fences
	IQRMultiplier = 1.5

	// Quantiles bounding the interquartile range
	LowerQuartile = 0.25
	UpperQuartile = 0.75

	// HeadRows is the number of rows shown in report previews
	HeadRows = 5

	// BannerWidth is the width of report section separators
	BannerWidth = 80

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "stderr"

	// Telemetry
	ServiceName = "industrial-dataops"
	MeterName   = "dataopscli"
)

// RequiredColumns lists the columns the quality checks need
var RequiredColumns = []string{
	ColumnTimestamp,
	ColumnMachineID,
	ColumnTemperature,
	ColumnVibration,
}

// ProjectedColumns lists the source columns kept by the asset projection
var ProjectedColumns = []string{
	ColumnTimestamp,
	ColumnMachineID,
	ColumnTemperature,
}

// AssetRenames maps source column names to their projected names
var AssetRenames = map[string]string{
	ColumnMachineID:   ColumnAssetID,
	ColumnTemperature: ColumnTemperatureC,
}
