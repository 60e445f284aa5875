package analyst

import (
	"github.com/tabledata/csv-analyst/internal/tabular"
)

// PreviewResponse is the structured result of the preview operation.
type PreviewResponse struct {
	Columns       []string         `json:"columns"`
	Rows          []map[string]any `json:"rows"`
	TotalRowCount int              `json:"total_row_count"`
}

// ColumnSummary is one column's entry in a describe result. Numeric
// aggregates and the most frequent value are omitted entirely when the
// column has no data, so "no data" never reads as zero.
type ColumnSummary struct {
	Type         string   `json:"type"`
	NonMissing   int      `json:"non_missing"`
	Missing      int      `json:"missing"`
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	Mean         *float64 `json:"mean,omitempty"`
	Distinct     *int     `json:"distinct,omitempty"`
	MostFrequent *string  `json:"most_frequent,omitempty"`
}

// DescribeResponse is the structured result of the describe operation.
// Columns preserves declaration order; Summary is keyed by column name.
type DescribeResponse struct {
	Columns []string                 `json:"columns"`
	Summary map[string]ColumnSummary `json:"summary"`
}

// FilterResponse is the structured result of the filter operation. The full
// column set is kept; only rows are filtered.
type FilterResponse struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

func newColumnSummary(cs tabular.ColumnStats) ColumnSummary {
	out := ColumnSummary{
		Type:       cs.Type.String(),
		NonMissing: cs.NonMissing,
		Missing:    cs.Missing,
		Min:        cs.Min,
		Max:        cs.Max,
		Mean:       cs.Mean,
	}
	if cs.Type == tabular.TypeText {
		distinct := cs.Distinct
		out.Distinct = &distinct
		out.MostFrequent = cs.MostFrequent
	}
	return out
}

// rowMaps renders rows as column-keyed maps: numbers as float64, text as
// string, missing as explicit nulls (the key is always present).
func rowMaps(columns []string, rows [][]tabular.Cell) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		m := make(map[string]any, len(columns))
		for j, col := range columns {
			m[col] = row[j].Value()
		}
		out[i] = m
	}
	return out
}
