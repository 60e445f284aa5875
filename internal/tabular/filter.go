package tabular

// FilterResult holds the rows matching an equality predicate. The full
// column set is preserved; no projection happens.
type FilterResult struct {
	Columns []string
	Rows    [][]Cell
}

// FilterEquals returns the rows whose cell in the named column equals value,
// coerced to the column's inferred type. On a numeric column an unparsable
// value matches nothing; that is not an error. Text comparison is exact and
// case-sensitive. Missing cells never match, including an empty value.
func FilterEquals(t *Table, column, value string) (*FilterResult, error) {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return nil, &ErrUnknownColumn{Column: column, Available: t.Columns}
	}

	result := &FilterResult{Columns: t.Columns, Rows: [][]Cell{}}

	if t.Types[idx] == TypeNumber {
		want, ok := parseNumber(value)
		if !ok {
			return result, nil
		}
		for _, row := range t.Rows {
			if row[idx].Kind == KindNumber && row[idx].Number == want {
				result.Rows = append(result.Rows, row)
			}
		}
		return result, nil
	}

	for _, row := range t.Rows {
		if row[idx].Kind == KindText && row[idx].Text == value {
			result.Rows = append(result.Rows, row)
		}
	}
	return result, nil
}
