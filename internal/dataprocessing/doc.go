// Package dataprocessing loads sensor observation tables and derives views
// and summaries from them.
//
// # Loading
//
// Loader validates the input path and decodes it by extension: .xlsx files
// are read from their first sheet with excelize, anything else as delimited
// text. The first record is the header. Every column except the timestamp
// column is typed by inference:
//
//	int64    every cell is an integer and none is missing
//	float64  every present cell is a number (integers with gaps land here)
//	bool     every cell is True/False and none is missing
//	string   anything else
//
// The timestamp column is always datetime; cells no layout parses become
// null and are counted in Column.Unparsed.
//
// # Summaries
//
// Info lists columns with non-null counts and kinds. Describe computes
// count, mean, std, min, quartiles and max over numeric columns and the
// same minus std over datetime columns, using the quantile definition of
// the quality package.
//
// # Projection
//
//	view, err := dataprocessing.ProjectAssetView(table)
//	// columns: timestamp, asset_id, temperature_c
package dataprocessing
