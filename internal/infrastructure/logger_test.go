package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataopscli/internal/config"
)

func decodeLastLine(t *testing.T, content []byte) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry), "log output is not valid JSON")
	return entry
}

func TestInitializeLogger(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	logFile := filepath.Join(t.TempDir(), "logs", "test.log")
	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.FileExists(t, logFile)
	assert.Same(t, logger, GetLogger())

	logger.Info("test message", "key", "value")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	entry := decodeLastLine(t, content)
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestNewLogger_Outputs(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		wantConsole bool
		wantFile    bool
	}{
		{name: "stderr", output: "stderr", wantConsole: true},
		{name: "file only", output: "file", wantFile: true},
		{name: "both", output: "both", wantConsole: true, wantFile: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			logFile := filepath.Join(t.TempDir(), "out.log")

			logger, file, err := NewLogger(config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   tt.output,
				FilePath: logFile,
			}, &console)
			require.NoError(t, err)

			logger.Info("hello")

			if tt.wantConsole {
				assert.Contains(t, console.String(), `"msg":"hello"`)
			} else {
				assert.Empty(t, console.String())
			}

			if tt.wantFile {
				require.NotNil(t, file)
				require.NoError(t, file.Close())
				content, err := os.ReadFile(logFile)
				require.NoError(t, err)
				assert.Contains(t, string(content), `"msg":"hello"`)
			} else {
				assert.Nil(t, file)
				assert.NoFileExists(t, logFile)
			}
		})
	}
}

func TestNewLogger_TextFormat(t *testing.T) {
	var console bytes.Buffer
	logger, _, err := NewLogger(config.LoggingConfig{Level: "info", Format: "text", Output: "stderr"}, &console)
	require.NoError(t, err)

	logger.Info("plain", "rows", 3)
	assert.Contains(t, console.String(), "msg=plain")
	assert.Contains(t, console.String(), "rows=3")
}

func TestTraceIDInjection(t *testing.T) {
	var console bytes.Buffer
	logger, _, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "json", Output: "stderr"}, &console)
	require.NoError(t, err)

	ctx := WithTraceID(context.Background(), "test-trace-123")
	logger.InfoContext(ctx, "test with trace")

	entry := decodeLastLine(t, console.Bytes())
	assert.Equal(t, "test-trace-123", entry["trace_id"])

	console.Reset()
	logger.InfoContext(context.Background(), "no trace")
	entry = decodeLastLine(t, console.Bytes())
	assert.NotContains(t, entry, "trace_id")
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
		warnSeen  bool
	}{
		{level: "debug", debugSeen: true, infoSeen: true, warnSeen: true},
		{level: "info", infoSeen: true, warnSeen: true},
		{level: "warning", warnSeen: true},
		{level: "error"},
		{level: "bogus", infoSeen: true, warnSeen: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var console bytes.Buffer
			logger, _, err := NewLogger(config.LoggingConfig{Level: tt.level, Format: "json", Output: "stderr"}, &console)
			require.NoError(t, err)

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")

			out := console.String()
			assert.Equal(t, tt.debugSeen, strings.Contains(out, `"msg":"d"`))
			assert.Equal(t, tt.infoSeen, strings.Contains(out, `"msg":"i"`))
			assert.Equal(t, tt.warnSeen, strings.Contains(out, `"msg":"w"`))
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := EnsureTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.NotEmpty(t, traceID)

	// EnsureTraceID keeps an existing trace ID
	assert.Equal(t, traceID, GetTraceID(EnsureTraceID(ctx)))
	assert.NotEqual(t, traceID, GenerateTraceID())
}

func TestLoggerHelpers(t *testing.T) {
	var console bytes.Buffer
	logger, _, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "stderr"}, &console)
	require.NoError(t, err)

	WithComponent(logger, "loader").Info("component test")
	entry := decodeLastLine(t, console.Bytes())
	assert.Equal(t, "loader", entry["component"])

	console.Reset()
	WithError(logger, os.ErrNotExist).Info("error test")
	entry = decodeLastLine(t, console.Bytes())
	assert.Contains(t, entry["error"], "file does not exist")

	assert.Same(t, logger, WithError(logger, nil))
}
