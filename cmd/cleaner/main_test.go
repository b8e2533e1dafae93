package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataopscli/internal/config"
	apperrors "dataopscli/internal/errors"
	"dataopscli/internal/infrastructure"
	"dataopscli/internal/shared/testutil"
)

// setupWorkDir chdirs into a temp directory and routes logs to a file there
func setupWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATAOPS_LOGGING_OUTPUT", "file")
	t.Setenv("DATAOPS_LOGGING_FILE_PATH", filepath.Join(dir, "logs", "cleaner.log"))
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)
	return dir
}

func TestRun(t *testing.T) {
	dir := setupWorkDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultInputFile), []byte(testutil.SensorCSV), 0644))

	var stdout bytes.Buffer
	require.NoError(t, run(&stdout))

	assert.Contains(t, stdout.String(), "Dataset Shape: 6 rows × 5 columns")
	assert.Contains(t, stdout.String(), "DATA CLEANING COMPLETE")

	logs, err := os.ReadFile(filepath.Join(dir, "logs", "cleaner.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logs), "Stage complete")
	assert.Contains(t, string(logs), "trace_id")
}

func TestRun_MissingInput(t *testing.T) {
	setupWorkDir(t)

	var stdout bytes.Buffer
	err := run(&stdout)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIO))
}

func TestRun_InvalidConfig(t *testing.T) {
	setupWorkDir(t)
	t.Setenv("DATAOPS_LOGGING_LEVEL", "verbose")

	err := run(&bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestRun_InputFromEnv(t *testing.T) {
	dir := setupWorkDir(t)
	path := testutil.WriteFile(t, "readings.csv", testutil.SensorCSV)
	t.Setenv("DATAOPS_INPUT_PATH", path)
	assert.NoFileExists(t, filepath.Join(dir, config.DefaultInputFile))

	var stdout bytes.Buffer
	require.NoError(t, run(&stdout))
	assert.Contains(t, stdout.String(), "DATA CLEANING COMPLETE")
}
