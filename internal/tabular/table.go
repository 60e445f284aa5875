package tabular

import (
	"strings"
)

// Table is the in-memory representation of one delimited file. It is built
// once per operation and never mutated afterwards: every row holds exactly
// one cell per declared column, and Types is fixed at construction so all
// operations agree on each column's inferred type.
type Table struct {
	Columns []string
	Types   []ColumnType
	Rows    [][]Cell
}

// NewTable builds a Table from a trimmed-header candidate and raw records.
// Records shorter than the header are padded with missing cells; longer
// records fail with ErrMalformedRow. Type inference runs once over the
// complete column: a column is numeric only when it has at least one
// non-missing cell and every non-missing cell parses as a number.
func NewTable(header []string, records [][]string) (*Table, error) {
	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := seen[name]; dup {
			return nil, &ErrMalformedHeader{Column: name}
		}
		seen[name] = struct{}{}
		columns[i] = name
	}

	rows := make([][]Cell, 0, len(records))
	for i, record := range records {
		if len(record) > len(columns) {
			return nil, &ErrMalformedRow{Row: i + 1, Fields: len(record), Want: len(columns)}
		}
		row := make([]Cell, len(columns))
		for j := range columns {
			if j >= len(record) || record[j] == "" {
				row[j] = MissingCell
				continue
			}
			row[j] = Cell{Kind: KindText, Text: record[j]}
		}
		rows = append(rows, row)
	}

	t := &Table{
		Columns: columns,
		Types:   inferTypes(columns, rows),
		Rows:    rows,
	}

	// Re-tag cells in numeric columns so comparisons and aggregations can
	// pattern-match on the kind alone.
	for j, typ := range t.Types {
		if typ != TypeNumber {
			continue
		}
		for _, row := range t.Rows {
			if row[j].Kind == KindMissing {
				continue
			}
			n, _ := parseNumber(row[j].Text)
			row[j] = Cell{Kind: KindNumber, Number: n, Text: row[j].Text}
		}
	}

	return t, nil
}

// inferTypes decides each column's type from the whole column. An all-missing
// column stays text: with no evidence the engine never claims numeric data.
func inferTypes(columns []string, rows [][]Cell) []ColumnType {
	types := make([]ColumnType, len(columns))
	for j := range columns {
		numeric := false
		for _, row := range rows {
			cell := row[j]
			if cell.Kind == KindMissing {
				continue
			}
			if _, ok := parseNumber(cell.Text); !ok {
				numeric = false
				break
			}
			numeric = true
		}
		if numeric {
			types[j] = TypeNumber
		}
	}
	return types
}

// ColumnIndex returns the position of a column name, case-sensitively.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, col := range t.Columns {
		if col == name {
			return i, true
		}
	}
	return 0, false
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}
