package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths resolves file locations used by the executables.
// Relative paths are resolved against the working directory, which is
// where the sensor dataset is expected to live.
type Paths struct {
	WorkingDir string
	LogsDir    string
}

// GetPaths returns paths rooted at the current working directory
func GetPaths() (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewPaths(wd), nil
}

// NewPaths returns paths rooted at baseDir
func NewPaths(baseDir string) *Paths {
	return &Paths{
		WorkingDir: baseDir,
		LogsDir:    filepath.Join(baseDir, "logs"),
	}
}

// ResolveInput returns path unchanged when absolute, otherwise joined to the working directory
func (p *Paths) ResolveInput(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.WorkingDir, path)
}

// GetLogPath returns the path of a log file inside the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// EnsureDirectories creates the logs directory if it doesn't exist
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.LogsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.LogsDir, err)
	}
	slog.Debug("Ensured directory exists", slog.String("directory", p.LogsDir))
	return nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
