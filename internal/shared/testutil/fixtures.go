package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/xuri/excelize/v2"
)

// SensorCSV is a small observation table with one vibration outlier (100)
// and one negative temperature reading
const SensorCSV = `timestamp,machine_id,temperature,vibration,pressure
2024-01-01 00:00:00,M1,20.5,1,101.2
2024-01-01 01:00:00,M2,-5,2,101.0
2024-01-01 02:00:00,M1,0,3,100.8
2024-01-01 03:00:00,M3,10,4,101.1
2024-01-01 04:00:00,M2,22.1,5,100.9
2024-01-01 05:00:00,M1,23.4,100,101.3
`

// WriteFile writes content to name inside a fresh temp directory and returns its path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// CSVFromRows joins rows into delimited text with a trailing newline
func CSVFromRows(rows ...[]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteWorkbook writes rows to the first sheet of a new .xlsx file.
// Cells are written as strings except for values passed as float64 or int.
func WriteWorkbook(t *testing.T, name string, rows ...[]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to resolve cell: %v", err)
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			t.Fatalf("failed to write workbook row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook %s: %v", path, err)
	}
	return path
}

// WriteCompressed writes content to name inside a fresh temp directory,
// compressed with the codec its extension names (.gz, .zst or .sz)
func WriteCompressed(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture %s: %v", path, err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch filepath.Ext(name) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst":
		enc, err := zstd.NewWriter(f)
		if err != nil {
			t.Fatalf("failed to create zstd encoder: %v", err)
		}
		w = enc
	case ".sz":
		w = snappy.NewBufferedWriter(f)
	default:
		t.Fatalf("no codec for fixture %s", name)
	}

	if _, err := io.WriteString(w, content); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close fixture %s: %v", path, err)
	}
	return path
}
