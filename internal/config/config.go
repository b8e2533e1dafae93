package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "dataopscli/internal/errors"
)

// EnvPrefix namespaces every environment variable read by Load
const EnvPrefix = "DATAOPS"

// Config represents the complete application configuration.
// Fields carry no envconfig tags because envconfig falls back to the bare
// tag name when the prefixed variable is unset (INPUT.PATH would read $PATH).
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Input     InputConfig     `yaml:"input"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Report    ReportConfig    `yaml:"report"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format      string `yaml:"format" validate:"oneof=json text"`
	Output      string `yaml:"output" validate:"oneof=console stdout stderr file both"`
	FilePath    string `yaml:"file_path" split_words:"true" validate:"required_if=Output file,required_if=Output both"`
	Development bool   `yaml:"development"`
}

// InputConfig locates the sensor dataset
type InputConfig struct {
	Path      string `yaml:"path" validate:"required"`
	Delimiter string `yaml:"delimiter" validate:"len=1"`
}

// TelemetryConfig controls optional tracing and metrics export
type TelemetryConfig struct {
	Environment     string  `yaml:"environment"`
	TraceExporter   string  `yaml:"trace_exporter" split_words:"true" validate:"oneof=none stdout"`
	SampleRatio     float64 `yaml:"sample_ratio" split_words:"true" validate:"gte=0,lte=1"`
	MetricsTextfile string  `yaml:"metrics_textfile" split_words:"true"`
}

// ReportConfig controls optional report artifacts.
// ChartPath, when set, receives a box plot of the outlier column; its
// extension (.png, .svg, .pdf) selects the image format.
type ReportConfig struct {
	ChartPath string `yaml:"chart_path" split_words:"true"`
}

// DelimiterRune returns the configured field delimiter
func (c InputConfig) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}

// Load loads configuration with precedence env > config file > defaults.
// Defaults come from Default rather than envconfig tags so that values read
// from the file are not overwritten by defaults for unset variables.
func Load() (*Config, error) {
	return LoadFile(getConfigFilePath())
}

// LoadFile is Load with an explicit config file; an empty path skips the file
func LoadFile(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).
				WithContext("file", configFile)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, apperrors.NewConfigError("config validation failed", err)
	}

	return cfg, nil
}

// loadFromFile overlays values from a YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: "logs/dataops.log",
		},
		Input: InputConfig{
			Path:      DefaultInputFile,
			Delimiter: ",",
		},
		Telemetry: TelemetryConfig{
			Environment:   "development",
			TraceExporter: "none",
			SampleRatio:   1.0,
		},
	}
}
