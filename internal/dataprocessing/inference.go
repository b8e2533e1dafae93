package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dataopscli/pkg/contracts/domain"
)

// nullTokens are the cell values read as missing, in addition to the empty string
var nullTokens = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

// timestampLayouts are tried in order; the first that parses wins.
// Slash dates are read month first. time.Parse accepts fractional seconds
// after a seconds field without a layout for them.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/06 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// IsNullToken reports whether a raw cell is read as missing
func IsNullToken(cell string) bool {
	s := strings.TrimSpace(cell)
	if s == "" {
		return true
	}
	_, ok := nullTokens[s]
	return ok
}

// ParseTimestamp parses a cell with the first matching layout.
// Times without a zone are UTC.
func ParseTimestamp(cell string) (time.Time, error) {
	s := strings.TrimSpace(cell)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", cell)
}

// parseTimeColumn converts every cell to an instant. Unparseable cells
// become null and are counted in Column.Unparsed.
func parseTimeColumn(name string, cells []string) *domain.Column {
	times := make([]time.Time, len(cells))
	valid := make([]bool, len(cells))
	unparsed := 0
	for i, cell := range cells {
		if IsNullToken(cell) {
			continue
		}
		ts, err := ParseTimestamp(cell)
		if err != nil {
			unparsed++
			continue
		}
		times[i] = ts
		valid[i] = true
	}
	return &domain.Column{
		Name:     name,
		Kind:     domain.KindDatetime,
		Times:    times,
		Valid:    valid,
		Unparsed: unparsed,
	}
}

// inferColumn picks the narrowest kind every non-null cell converts to:
// int64 (only without nulls), float64, bool (only without nulls), else string
func inferColumn(name string, cells []string) *domain.Column {
	valid := make([]bool, len(cells))
	nulls := 0
	for i, cell := range cells {
		valid[i] = !IsNullToken(cell)
		if !valid[i] {
			nulls++
		}
	}

	if nulls == 0 {
		if ints, ok := parseInts(cells); ok {
			return &domain.Column{Name: name, Kind: domain.KindInt, Ints: ints, Valid: valid}
		}
	}
	if floats, ok := parseFloats(cells, valid); ok {
		return &domain.Column{Name: name, Kind: domain.KindFloat, Floats: floats, Valid: valid}
	}
	if nulls == 0 {
		if bools, ok := parseBools(cells); ok {
			return &domain.Column{Name: name, Kind: domain.KindBool, Bools: bools, Valid: valid}
		}
	}

	strs := make([]string, len(cells))
	for i, cell := range cells {
		if valid[i] {
			strs[i] = cell
		}
	}
	return &domain.Column{Name: name, Kind: domain.KindString, Strings: strs, Valid: valid}
}

func parseInts(cells []string) ([]int64, bool) {
	out := make([]int64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseFloats(cells []string, valid []bool) ([]float64, bool) {
	out := make([]float64, len(cells))
	for i, cell := range cells {
		if !valid[i] {
			continue
		}
		s := strings.TrimSpace(cell)
		// strconv accepts hex floats and digit separators; CSV readers don't
		if strings.ContainsAny(s, "xX_") {
			return nil, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseBools(cells []string) ([]bool, bool) {
	out := make([]bool, len(cells))
	for i, cell := range cells {
		switch strings.TrimSpace(cell) {
		case "True", "TRUE", "true":
			out[i] = true
		case "False", "FALSE", "false":
			out[i] = false
		default:
			return nil, false
		}
	}
	return out, true
}

// uniqueHeader names blank headers "Unnamed: i" and suffixes repeats with ".1", ".2", ...
func uniqueHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		for {
			if _, dup := seen[name]; !dup {
				break
			}
			seen[base]++
			name = fmt.Sprintf("%s.%d", base, seen[base])
		}
		seen[name] = 0
		out[i] = name
	}
	return out
}
