package exporter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"dataopscli/internal/config"
	"dataopscli/internal/dataprocessing"
	"dataopscli/internal/quality"
	"dataopscli/pkg/contracts/domain"
)

// ReportWriter renders the human-readable report. Write errors are sticky:
// after the first failure every call is a no-op and Err returns it.
type ReportWriter struct {
	w   io.Writer
	err error
}

// NewReportWriter creates a report writer over w
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: w}
}

// Err returns the first write error
func (r *ReportWriter) Err() error {
	return r.err
}

func (r *ReportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// rule is the separator line framing titles
func rule() string {
	return strings.Repeat("=", config.BannerWidth)
}

// Banner prints a framed title
func (r *ReportWriter) Banner(title string) {
	r.printf("%s\n%s\n%s\n", rule(), title, rule())
}

// Section prints a framed title preceded by a blank line
func (r *ReportWriter) Section(title string) {
	r.printf("\n")
	r.Banner(title)
}

// Line prints one formatted line
func (r *ReportWriter) Line(format string, args ...any) {
	r.printf(format+"\n", args...)
}

// Shape prints the row and column counts
func (r *ReportWriter) Shape(t *domain.Table) {
	r.printf("\nDataset Shape: %d rows × %d columns\n", t.NumRows(), t.NumCols())
}

// tabular flushes right-aligned cells separated by two spaces
func (r *ReportWriter) tabular(rows [][]string) {
	if r.err != nil {
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")+"\t"); err != nil {
			r.err = err
			return
		}
	}
	r.err = tw.Flush()
}

// Table prints every row of t with its row label
func (r *ReportWriter) Table(t *domain.Table) {
	cols := t.Columns()
	if t.NumRows() == 0 {
		r.printf("Empty table\nColumns: [%s]\nIndex: []\n", strings.Join(t.ColumnNames(), ", "))
		return
	}

	rows := make([][]string, 0, t.NumRows()+1)
	header := append([]string{""}, t.ColumnNames()...)
	rows = append(rows, header)
	for i := 0; i < t.NumRows(); i++ {
		row := make([]string, 0, len(cols)+1)
		row = append(row, fmt.Sprint(t.RowLabel(i)))
		for _, c := range cols {
			row = append(row, formatCell(c, i))
		}
		rows = append(rows, row)
	}
	r.tabular(rows)
}

// Head prints the first config.HeadRows rows of t
func (r *ReportWriter) Head(t *domain.Table) {
	r.Table(t.Head(config.HeadRows))
}

// Info prints the column listing with non-null counts and kinds
func (r *ReportWriter) Info(info dataprocessing.TableInfo) {
	r.printf("<Table>\n")
	if info.Rows == 0 {
		r.printf("Index: 0 entries\n")
	} else {
		r.printf("Index: %d entries, 0 to %d\n", info.Rows, info.Rows-1)
	}
	r.printf("Data columns (total %d columns):\n", len(info.Columns))

	if r.err == nil {
		tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, " #\tColumn\tNon-Null Count\tDtype")
		fmt.Fprintln(tw, "---\t------\t--------------\t-----")
		for _, c := range info.Columns {
			fmt.Fprintf(tw, " %d\t%s\t%d non-null\t%s\n", c.Position, c.Name, c.NonNull, c.Kind)
		}
		r.err = tw.Flush()
	}

	parts := make([]string, 0, len(info.KindCounts))
	for _, k := range info.Kinds() {
		parts = append(parts, fmt.Sprintf("%s(%d)", k, info.KindCounts[k]))
	}
	r.printf("dtypes: %s\n", strings.Join(parts, ", "))
}

// Describe prints summary statistics, one column per numeric column,
// followed by the datetime columns
func (r *ReportWriter) Describe(d dataprocessing.Description) {
	if len(d.Numeric) == 0 && len(d.Times) == 0 {
		r.printf("No numeric or datetime columns to describe\n")
		return
	}

	if len(d.Numeric) > 0 {
		header := []string{""}
		for _, s := range d.Numeric {
			header = append(header, s.Column)
		}
		stats := []struct {
			label string
			value func(dataprocessing.NumericSummary) string
		}{
			{"count", func(s dataprocessing.NumericSummary) string { return fmt.Sprint(s.Count) }},
			{"mean", func(s dataprocessing.NumericSummary) string { return formatStat(s.Mean) }},
			{"std", func(s dataprocessing.NumericSummary) string { return formatStat(s.Std) }},
			{"min", func(s dataprocessing.NumericSummary) string { return formatStat(s.Min) }},
			{"25%", func(s dataprocessing.NumericSummary) string { return formatStat(s.Q25) }},
			{"50%", func(s dataprocessing.NumericSummary) string { return formatStat(s.Q50) }},
			{"75%", func(s dataprocessing.NumericSummary) string { return formatStat(s.Q75) }},
			{"max", func(s dataprocessing.NumericSummary) string { return formatStat(s.Max) }},
		}
		rows := [][]string{header}
		for _, st := range stats {
			row := []string{st.label}
			for _, s := range d.Numeric {
				row = append(row, st.value(s))
			}
			rows = append(rows, row)
		}
		r.tabular(rows)
	}

	for _, s := range d.Times {
		r.printf("\n")
		r.tabular([][]string{
			{"", s.Column},
			{"count", fmt.Sprint(s.Count)},
			{"mean", formatTime(s.Mean)},
			{"min", formatTime(s.Min)},
			{"25%", formatTime(s.Q25)},
			{"50%", formatTime(s.Q50)},
			{"75%", formatTime(s.Q75)},
			{"max", formatTime(s.Max)},
		})
	}
}

// Dtypes prints each column name with its kind
func (r *ReportWriter) Dtypes(t *domain.Table) {
	if r.err != nil {
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, c := range t.Columns() {
		fmt.Fprintf(tw, "%s\t%s\n", c.Name, c.Kind)
	}
	r.err = tw.Flush()
}

// TimestampCheck prints the timestamp integrity result
func (r *ReportWriter) TimestampCheck(res quality.TimestampResult) {
	r.Line("Timestamp column data type: %s", res.Kind)
	r.Line("Number of null values in timestamp column: %d", res.NullCount)
	if res.Unparsed > 0 {
		r.Line("Cells that could not be parsed as timestamps: %d", res.Unparsed)
	}
}

// RangeCheck prints the range validation result and a sample of the flagged rows
func (r *ReportWriter) RangeCheck(res quality.RangeResult, flagged *domain.Table) {
	r.Line("Number of records with %s < %g°C: %d", res.Column, res.Threshold, res.Count())
	r.sample(flagged)
}

// OutlierCheck prints the IQR statistics, the outlier count and a sample of the flagged rows
func (r *ReportWriter) OutlierCheck(res quality.OutlierResult, flagged *domain.Table) {
	b := res.Bounds
	r.Line("Q1 (25th percentile): %s", formatBound(b.Q1))
	r.Line("Q3 (75th percentile): %s", formatBound(b.Q3))
	r.Line("IQR: %s", formatBound(b.IQR))
	r.Line("Lower bound (Q1 - 1.5×IQR): %s", formatBound(b.Lower))
	r.Line("Upper bound (Q3 + 1.5×IQR): %s", formatBound(b.Upper))
	r.Line("Total number of outliers in %s column: %d", res.Column, res.Count())
	r.sample(flagged)
}

// sample prints the first rows of a flagged subset; nil or empty prints nothing
func (r *ReportWriter) sample(flagged *domain.Table) {
	if flagged == nil || flagged.NumRows() == 0 {
		return
	}
	shown := flagged.Head(config.HeadRows)
	r.Line("First %d of %d flagged rows:", shown.NumRows(), flagged.NumRows())
	r.Table(shown)
}
