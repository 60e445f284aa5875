package tabular

// ColumnStats summarizes one column. Min, Max and Mean are pointers so a
// column with zero non-missing values reports "no data" rather than zero.
// MostFrequent is likewise absent for an empty text column.
type ColumnStats struct {
	Name         string
	Type         ColumnType
	NonMissing   int
	Missing      int
	Min          *float64
	Max          *float64
	Mean         *float64
	Distinct     int
	MostFrequent *string
}

// Describe computes per-column statistics for every column in declaration
// order. Numeric columns get min/max/mean over non-missing values; text
// columns get distinct count and the most frequent value, first-seen order
// breaking ties.
func Describe(t *Table) []ColumnStats {
	stats := make([]ColumnStats, len(t.Columns))
	for j, name := range t.Columns {
		s := ColumnStats{Name: name, Type: t.Types[j]}

		switch t.Types[j] {
		case TypeNumber:
			var sum float64
			var min, max float64
			for _, row := range t.Rows {
				cell := row[j]
				if cell.Kind == KindMissing {
					s.Missing++
					continue
				}
				if s.NonMissing == 0 || cell.Number < min {
					min = cell.Number
				}
				if s.NonMissing == 0 || cell.Number > max {
					max = cell.Number
				}
				sum += cell.Number
				s.NonMissing++
			}
			if s.NonMissing > 0 {
				mean := sum / float64(s.NonMissing)
				mn, mx := min, max
				s.Min, s.Max, s.Mean = &mn, &mx, &mean
			}

		default:
			counts := make(map[string]int)
			var order []string
			for _, row := range t.Rows {
				cell := row[j]
				if cell.Kind == KindMissing {
					s.Missing++
					continue
				}
				s.NonMissing++
				if _, seen := counts[cell.Text]; !seen {
					order = append(order, cell.Text)
				}
				counts[cell.Text]++
			}
			s.Distinct = len(counts)
			best := -1
			for _, v := range order {
				if counts[v] > best {
					best = counts[v]
					top := v
					s.MostFrequent = &top
				}
			}
		}

		stats[j] = s
	}
	return stats
}
