// Package exporter renders quality-check results for people.
//
// ReportWriter prints the plain-text report that both executables write to
// stdout: dataset shape, previews, column listings, summary statistics and
// the outcome of each check.
//
// WriteOutlierChart draws an optional box plot of a checked column with its
// IQR fences, saved as PNG, SVG or PDF depending on the file extension.
//
// Example usage:
//
//	rw := exporter.NewReportWriter(os.Stdout)
//	rw.Banner("INDUSTRIAL DATAOPS - DATA CLEANING")
//	rw.OutlierCheck(report.Outliers, flagged)
//	if err := rw.Err(); err != nil {
//	    return err
//	}
package exporter
