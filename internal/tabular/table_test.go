package tabular

import (
	"errors"
	"testing"
)

func TestNewTableHeaderHandling(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		records [][]string
		wantErr bool
		wantCol string
	}{
		{"Plain header", []string{"id", "name"}, nil, false, ""},
		{"Names are trimmed", []string{" id ", "name"}, nil, false, ""},
		{"Duplicate after trim", []string{"id", " id"}, nil, true, "id"},
		{"Case sensitive names", []string{"id", "ID"}, nil, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.header, tt.records)
			if tt.wantErr {
				var mh *ErrMalformedHeader
				if !errors.As(err, &mh) {
					t.Fatalf("NewTable() error = %v, want ErrMalformedHeader", err)
				}
				if mh.Column != tt.wantCol {
					t.Errorf("duplicate column = %q, want %q", mh.Column, tt.wantCol)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTable() unexpected error: %v", err)
			}
			for _, col := range table.Columns {
				if col != "" && (col[0] == ' ' || col[len(col)-1] == ' ') {
					t.Errorf("column %q not trimmed", col)
				}
			}
		})
	}
}

func TestNewTableRowShapes(t *testing.T) {
	header := []string{"a", "b", "c"}

	table, err := NewTable(header, [][]string{{"1", "2"}})
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}
	if got := table.Rows[0][2].Kind; got != KindMissing {
		t.Errorf("padded cell kind = %v, want KindMissing", got)
	}

	_, err = NewTable(header, [][]string{{"1", "2", "3"}, {"1", "2", "3", "4"}})
	var mr *ErrMalformedRow
	if !errors.As(err, &mr) {
		t.Fatalf("NewTable() error = %v, want ErrMalformedRow", err)
	}
	if mr.Row != 2 {
		t.Errorf("row index = %d, want 2", mr.Row)
	}
}

func TestTypeInference(t *testing.T) {
	tests := []struct {
		name   string
		column []string // one value per row, "" is missing
		want   ColumnType
	}{
		{"Integers", []string{"1", "2", "-3"}, TypeNumber},
		{"Decimals and exponents", []string{"1.5", "+2e3", "-0.25"}, TypeNumber},
		{"Numeric with missing", []string{"1", "", "3"}, TypeNumber},
		{"Mixed degrades to text", []string{"1", "x", "3"}, TypeText},
		{"All missing stays text", []string{"", "", ""}, TypeText},
		{"Whitespace is not numeric", []string{" 1", "2"}, TypeText},
		{"Inf spelling is not numeric", []string{"Inf", "1"}, TypeText},
		{"NaN spelling is not numeric", []string{"NaN"}, TypeText},
		{"Hex float is not numeric", []string{"0x1p-2"}, TypeText},
		{"Digit separators are not numeric", []string{"1_000"}, TypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([][]string, len(tt.column))
			for i, v := range tt.column {
				records[i] = []string{v}
			}
			table, err := NewTable([]string{"col"}, records)
			if err != nil {
				t.Fatalf("NewTable() unexpected error: %v", err)
			}
			if table.Types[0] != tt.want {
				t.Errorf("inferred type = %v, want %v", table.Types[0], tt.want)
			}
		})
	}
}

func TestNumericCellsAreRetagged(t *testing.T) {
	table, err := NewTable([]string{"n", "s"}, [][]string{
		{"1.5", "1.5"},
		{"2", "two"},
	})
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}
	if table.Types[0] != TypeNumber || table.Types[1] != TypeText {
		t.Fatalf("types = %v, %v", table.Types[0], table.Types[1])
	}
	if c := table.Rows[0][0]; c.Kind != KindNumber || c.Number != 1.5 {
		t.Errorf("numeric cell = %+v, want number 1.5", c)
	}
	// Numeric-looking text in a mixed column is NOT coerced.
	if c := table.Rows[0][1]; c.Kind != KindText || c.Text != "1.5" {
		t.Errorf("text cell = %+v, want text \"1.5\"", c)
	}
}

func TestColumnIndex(t *testing.T) {
	table, err := NewTable([]string{"id", "Name"}, nil)
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}
	if i, ok := table.ColumnIndex("Name"); !ok || i != 1 {
		t.Errorf("ColumnIndex(Name) = %d, %v", i, ok)
	}
	if _, ok := table.ColumnIndex("name"); ok {
		t.Error("ColumnIndex should be case-sensitive")
	}
}
