package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound is returned when a named column is absent from a table
	ErrColumnNotFound = errors.New("column not found")
	// ErrDuplicateColumn is returned when two columns share a name
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrRaggedColumns is returned when columns differ in length
	ErrRaggedColumns = errors.New("columns have different lengths")
)

// Table is an ordered set of equal-length columns representing sensor
// observations, one row per reading, in file order.
type Table struct {
	columns []*Column
	index   map[string]int

	// labels holds the source row number of each row; nil means 0..n-1
	labels []int
}

// NewTable builds a table from columns, checking names and lengths
func NewTable(columns ...*Column) (*Table, error) {
	t := &Table{
		columns: make([]*Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, c := range columns {
		if _, exists := t.index[c.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, c.Name)
		}
		if len(t.columns) > 0 && c.Len() != t.columns[0].Len() {
			return nil, fmt.Errorf("%w: %s has %d rows, expected %d",
				ErrRaggedColumns, c.Name, c.Len(), t.columns[0].Len())
		}
		t.index[c.Name] = len(t.columns)
		t.columns = append(t.columns, c)
	}
	return t, nil
}

// NumRows returns the number of rows
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// NumCols returns the number of columns
func (t *Table) NumCols() int {
	return len(t.columns)
}

// RowLabel returns the source row number of row i
func (t *Table) RowLabel(i int) int {
	if t.labels == nil {
		return i
	}
	return t.labels[i]
}

// Columns returns the columns in order
func (t *Table) Columns() []*Column {
	return t.columns
}

// ColumnNames returns the column names in order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by name
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return t.columns[i], nil
}

// Select returns a table holding only the named columns, in the given order.
// Columns are shared with the receiver.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return t.withColumns(cols)
}

// Rename returns a table whose columns are renamed by mapping old name to
// new name. Every key must name an existing column.
func (t *Table) Rename(mapping map[string]string) (*Table, error) {
	for old := range mapping {
		if _, ok := t.index[old]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, old)
		}
	}

	cols := make([]*Column, len(t.columns))
	for i, c := range t.columns {
		if name, ok := mapping[c.Name]; ok {
			cols[i] = c.Renamed(name)
		} else {
			cols[i] = c
		}
	}
	return t.withColumns(cols)
}

// Head returns the first n rows, or the whole table when it is shorter
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > t.NumRows() {
		n = t.NumRows()
	}
	cols := make([]*Column, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c.slice(n)
	}
	head, _ := NewTable(cols...)
	if t.labels != nil {
		head.labels = t.labels[:n]
	}
	return head
}

// Take returns a new table holding copies of the given rows in order.
// Row labels of the result point back at the source rows.
func (t *Table) Take(rows []int) (*Table, error) {
	for _, r := range rows {
		if r < 0 || r >= t.NumRows() {
			return nil, fmt.Errorf("row %d out of range [0, %d)", r, t.NumRows())
		}
	}
	cols := make([]*Column, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c.take(rows)
	}
	out, err := NewTable(cols...)
	if err != nil {
		return nil, err
	}
	out.labels = make([]int, len(rows))
	for j, r := range rows {
		out.labels[j] = t.RowLabel(r)
	}
	return out, nil
}

// withColumns builds a table over cols keeping the receiver's row labels
func (t *Table) withColumns(cols []*Column) (*Table, error) {
	out, err := NewTable(cols...)
	if err != nil {
		return nil, err
	}
	out.labels = t.labels
	return out, nil
}
