package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "dataopscli/internal/errors"
)

// InputFormat identifies how an input file is decoded
type InputFormat string

const (
	FormatCSV      InputFormat = "csv"
	FormatWorkbook InputFormat = "xlsx"
)

// Compression identifies a stream codec wrapped around delimited input
type Compression string

const (
	CompressionNone   Compression = ""
	CompressionGzip   Compression = "gzip"
	CompressionZstd   Compression = "zstd"
	CompressionSnappy Compression = "snappy"
)

var compressionExts = map[string]Compression{
	".gz":   CompressionGzip,
	".gzip": CompressionGzip,
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".sz":   CompressionSnappy,
}

// DetectCompression reports the codec named by the last extension of path
// and the path with that extension removed. Uncompressed paths are
// returned unchanged.
func DetectCompression(path string) (Compression, string) {
	ext := filepath.Ext(path)
	if codec, ok := compressionExts[strings.ToLower(ext)]; ok {
		return codec, strings.TrimSuffix(path, ext)
	}
	return CompressionNone, path
}

// FileValidator provides common file validation functions for all executables
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateFile checks if a specific file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return apperrors.NewIOError(fmt.Sprintf("file %s does not exist", path), err).
			WithContext("file", path)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewIOError(fmt.Sprintf("failed to stat file %s", path), err).
			WithContext("file", path)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return apperrors.NewIOError(fmt.Sprintf("%s is a directory, not a file", path), nil).
			WithContext("file", path)
	}

	// Check if file is readable by opening it
	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewIOError(fmt.Sprintf("file %s is not readable", path), err).
			WithContext("file", path)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateInputFile checks that path is a readable dataset and reports how
// to decode it. Anything other than .xlsx is treated as delimited text,
// which may be gzip, zstd or snappy compressed.
func (v *FileValidator) ValidateInputFile(path string) (InputFormat, error) {
	if err := v.ValidateFile(path); err != nil {
		return "", err
	}

	codec, inner := DetectCompression(path)
	ext := strings.ToLower(filepath.Ext(inner))
	if codec != CompressionNone && (ext == ".xlsx" || ext == ".xlsm" || ext == ".xls") {
		v.logger.Error("Compressed workbooks are not supported",
			slog.String("file", path),
			slog.String("compression", string(codec)))
		return "", apperrors.NewAppValidationError(fmt.Sprintf("file %s is a compressed workbook", path))
	}

	switch ext {
	case ".xlsx", ".xlsm":
		// Check it's not a temp file
		if strings.HasPrefix(filepath.Base(path), "~$") {
			v.logger.Warn("Refusing temporary Excel file",
				slog.String("file", path))
			return "", apperrors.NewAppValidationError(fmt.Sprintf("file %s is a temporary Excel file", path))
		}
		return FormatWorkbook, nil
	case ".xls":
		v.logger.Error("Legacy Excel format is not supported",
			slog.String("file", path))
		return "", apperrors.NewAppValidationError(fmt.Sprintf("file %s uses the legacy .xls format", path))
	default:
		return FormatCSV, nil
	}
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewIOError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	// Verify it's writable by creating a test file
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewIOError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}
