package dataprocessing

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"dataopscli/internal/config"
	apperrors "dataopscli/internal/errors"
	"dataopscli/internal/validation"
	"dataopscli/pkg/contracts/domain"
)

// LoadOptions control how a dataset is decoded
type LoadOptions struct {
	// Delimiter separates fields in text input
	Delimiter rune
	// TimestampColumn is parsed as instants when present
	TimestampColumn string
}

// DefaultLoadOptions returns comma-delimited input with the standard timestamp column
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Delimiter:       ',',
		TimestampColumn: config.ColumnTimestamp,
	}
}

// Loader reads observation tables from CSV or .xlsx files
type Loader struct {
	logger    *slog.Logger
	validator *validation.FileValidator
	opts      LoadOptions
}

// NewLoader creates a loader; zero-valued options fall back to the defaults
func NewLoader(logger *slog.Logger, opts LoadOptions) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	defaults := DefaultLoadOptions()
	if opts.Delimiter == 0 {
		opts.Delimiter = defaults.Delimiter
	}
	if opts.TimestampColumn == "" {
		opts.TimestampColumn = defaults.TimestampColumn
	}
	return &Loader{
		logger:    logger,
		validator: validation.NewFileValidator(logger),
		opts:      opts,
	}
}

// Load validates path and decodes it by extension into a table
func (l *Loader) Load(ctx context.Context, path string) (*domain.Table, error) {
	format, err := l.validator.ValidateInputFile(path)
	if err != nil {
		return nil, err
	}

	var table *domain.Table
	switch format {
	case validation.FormatWorkbook:
		table, err = LoadWorkbook(path, l.opts)
	default:
		table, err = LoadCSV(path, l.opts)
	}
	if err != nil {
		l.logger.ErrorContext(ctx, "Failed to load table",
			slog.String("file", path),
			slog.String("format", string(format)),
			slog.String("error", err.Error()))
		return nil, err
	}

	l.logger.InfoContext(ctx, "Table loaded",
		slog.String("file", path),
		slog.String("format", string(format)),
		slog.Int("rows", table.NumRows()),
		slog.Int("columns", table.NumCols()))

	if ts, err := table.Column(l.opts.TimestampColumn); err == nil && ts.Unparsed > 0 {
		l.logger.WarnContext(ctx, "Unparseable timestamps stored as null",
			slog.String("column", ts.Name),
			slog.Int("cells", ts.Unparsed))
	}
	return table, nil
}

// LoadCSV reads a delimited file into a table. A .gz, .zst or .sz
// extension selects the matching decompressor.
func LoadCSV(path string, opts LoadOptions) (*domain.Table, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ReadCSV decodes delimited text whose first record is the header.
// Short records are padded with missing cells; long records are an error.
func ReadCSV(r io.Reader, opts LoadOptions) (*domain.Table, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, apperrors.NewParsingError("malformed delimited input", err).
				WithContext("line", parseErr.Line)
		}
		return nil, apperrors.NewIOError("failed to read input", err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewParsingError("input has no header row", nil)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return buildTable(header, records[1:], opts)
}

// buildTable converts raw string records into typed columns
func buildTable(header []string, rows [][]string, opts LoadOptions) (*domain.Table, error) {
	names := uniqueHeader(header)
	cells := make([][]string, len(names))
	for j := range cells {
		cells[j] = make([]string, len(rows))
	}

	for i, row := range rows {
		if len(row) > len(names) {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("row %d has %d fields, header has %d", i+1, len(row), len(names)), nil).
				WithContext("row", i+1)
		}
		for j, cell := range row {
			cells[j][i] = cell
		}
	}

	columns := make([]*domain.Column, len(names))
	for j, name := range names {
		if name == opts.TimestampColumn {
			columns[j] = parseTimeColumn(name, cells[j])
		} else {
			columns[j] = inferColumn(name, cells[j])
		}
	}

	table, err := domain.NewTable(columns...)
	if err != nil {
		return nil, apperrors.NewSchemaError("invalid table layout", err)
	}
	return table, nil
}
