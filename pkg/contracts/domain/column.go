package domain

import (
	"fmt"
	"math"
	"time"
)

// ColumnKind identifies the storage type of a column
type ColumnKind string

const (
	KindDatetime ColumnKind = "datetime"
	KindInt      ColumnKind = "int64"
	KindFloat    ColumnKind = "float64"
	KindBool     ColumnKind = "bool"
	KindString   ColumnKind = "string"
)

// IsNumeric reports whether the kind holds numbers that statistics can run on
func (k ColumnKind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// Column is a named, typed vector of cells with a validity mask.
// Only the slice matching Kind is populated.
type Column struct {
	Name    string
	Kind    ColumnKind
	Times   []time.Time
	Ints    []int64
	Floats  []float64
	Bools   []bool
	Strings []string

	// Valid[i] is false when row i is null
	Valid []bool

	// Unparsed counts non-empty cells that could not be converted to Kind
	// and were stored as null instead (datetime columns only).
	Unparsed int
}

// NewFloatColumn creates a float64 column; NaN values are marked null
func NewFloatColumn(name string, values []float64) *Column {
	valid := make([]bool, len(values))
	for i, v := range values {
		valid[i] = !math.IsNaN(v)
	}
	return &Column{Name: name, Kind: KindFloat, Floats: values, Valid: valid}
}

// NewIntColumn creates an int64 column with no nulls
func NewIntColumn(name string, values []int64) *Column {
	return &Column{Name: name, Kind: KindInt, Ints: values, Valid: allValid(len(values))}
}

// NewStringColumn creates a string column with no nulls
func NewStringColumn(name string, values []string) *Column {
	return &Column{Name: name, Kind: KindString, Strings: values, Valid: allValid(len(values))}
}

// NewBoolColumn creates a bool column with no nulls
func NewBoolColumn(name string, values []bool) *Column {
	return &Column{Name: name, Kind: KindBool, Bools: values, Valid: allValid(len(values))}
}

// NewTimeColumn creates a datetime column; zero times are marked null
func NewTimeColumn(name string, values []time.Time) *Column {
	valid := make([]bool, len(values))
	for i, v := range values {
		valid[i] = !v.IsZero()
	}
	return &Column{Name: name, Kind: KindDatetime, Times: values, Valid: valid}
}

// Len returns the number of rows in the column
func (c *Column) Len() int {
	return len(c.Valid)
}

// IsNull reports whether row i holds no value
func (c *Column) IsNull(i int) bool {
	return !c.Valid[i]
}

// NullCount returns the number of null rows
func (c *Column) NullCount() int {
	n := 0
	for _, ok := range c.Valid {
		if !ok {
			n++
		}
	}
	return n
}

// NonNullCount returns the number of rows holding a value
func (c *Column) NonNullCount() int {
	return c.Len() - c.NullCount()
}

// Float64s returns the column as float64 values with NaN at null rows.
// Only numeric columns convert; other kinds return an error.
func (c *Column) Float64s() ([]float64, error) {
	out := make([]float64, c.Len())
	switch c.Kind {
	case KindFloat:
		for i, v := range c.Floats {
			if c.Valid[i] {
				out[i] = v
			} else {
				out[i] = math.NaN()
			}
		}
	case KindInt:
		for i, v := range c.Ints {
			if c.Valid[i] {
				out[i] = float64(v)
			} else {
				out[i] = math.NaN()
			}
		}
	default:
		return nil, fmt.Errorf("column %q has kind %s, not numeric", c.Name, c.Kind)
	}
	return out, nil
}

// Value returns the cell at row i, or nil when the row is null
func (c *Column) Value(i int) any {
	if !c.Valid[i] {
		return nil
	}
	switch c.Kind {
	case KindDatetime:
		return c.Times[i]
	case KindInt:
		return c.Ints[i]
	case KindFloat:
		return c.Floats[i]
	case KindBool:
		return c.Bools[i]
	default:
		return c.Strings[i]
	}
}

// Renamed returns a copy of the column header under a new name.
// Cell storage is shared with the receiver.
func (c *Column) Renamed(name string) *Column {
	cp := *c
	cp.Name = name
	return &cp
}

// slice returns rows [0, n) sharing storage with the receiver
func (c *Column) slice(n int) *Column {
	cp := *c
	cp.Valid = c.Valid[:n]
	switch c.Kind {
	case KindDatetime:
		cp.Times = c.Times[:n]
	case KindInt:
		cp.Ints = c.Ints[:n]
	case KindFloat:
		cp.Floats = c.Floats[:n]
	case KindBool:
		cp.Bools = c.Bools[:n]
	default:
		cp.Strings = c.Strings[:n]
	}
	return &cp
}

// take copies the given rows into a new column
func (c *Column) take(rows []int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind, Valid: make([]bool, len(rows))}
	switch c.Kind {
	case KindDatetime:
		out.Times = make([]time.Time, len(rows))
	case KindInt:
		out.Ints = make([]int64, len(rows))
	case KindFloat:
		out.Floats = make([]float64, len(rows))
	case KindBool:
		out.Bools = make([]bool, len(rows))
	default:
		out.Strings = make([]string, len(rows))
	}
	for j, i := range rows {
		out.Valid[j] = c.Valid[i]
		switch c.Kind {
		case KindDatetime:
			out.Times[j] = c.Times[i]
		case KindInt:
			out.Ints[j] = c.Ints[i]
		case KindFloat:
			out.Floats[j] = c.Floats[i]
		case KindBool:
			out.Bools[j] = c.Bools[i]
		default:
			out.Strings[j] = c.Strings[i]
		}
	}
	return out
}

func allValid(n int) []bool {
	valid := make([]bool, n)
	for i := range valid {
		valid[i] = true
	}
	return valid
}
