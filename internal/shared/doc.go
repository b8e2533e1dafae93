// Package shared groups helpers used across the data-quality packages.
//
// The testutil subpackage provides:
//
//	- BufferedSlogHandler, a slog.Handler that captures records for assertions
//	- Sensor dataset fixtures written to temp directories as CSV or .xlsx
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, handler := testutil.NewTestLogger(t)
//	    path := testutil.WriteFile(t, "data.csv", testutil.SensorCSV)
//	    // ...
//	    testutil.AssertNoErrors(t, handler)
//	}
package shared
