package tabular

import (
	"testing"
)

func TestDescribeNumericColumn(t *testing.T) {
	table, err := NewTable([]string{"price"}, [][]string{
		{"10"}, {"-2.5"}, {""}, {"4.5"},
	})
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}

	stats := Describe(table)
	s := stats[0]
	if s.Type != TypeNumber {
		t.Fatalf("type = %v, want numeric", s.Type)
	}
	if s.NonMissing != 3 || s.Missing != 1 {
		t.Errorf("counts = %d/%d, want 3/1", s.NonMissing, s.Missing)
	}
	if s.Min == nil || *s.Min != -2.5 {
		t.Errorf("min = %v, want -2.5", s.Min)
	}
	if s.Max == nil || *s.Max != 10 {
		t.Errorf("max = %v, want 10", s.Max)
	}
	if s.Mean == nil || *s.Mean != 4 {
		t.Errorf("mean = %v, want 4", s.Mean)
	}
}

func TestDescribeTextColumn(t *testing.T) {
	table, err := NewTable([]string{"name"}, [][]string{
		{"Alice"}, {"Bob"}, {"Alice"}, {""}, {"Carol"},
	})
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}

	s := Describe(table)[0]
	if s.Type != TypeText {
		t.Fatalf("type = %v, want text", s.Type)
	}
	if s.NonMissing != 4 || s.Missing != 1 {
		t.Errorf("counts = %d/%d, want 4/1", s.NonMissing, s.Missing)
	}
	if s.Distinct != 3 {
		t.Errorf("distinct = %d, want 3", s.Distinct)
	}
	if s.MostFrequent == nil || *s.MostFrequent != "Alice" {
		t.Errorf("most frequent = %v, want Alice", s.MostFrequent)
	}
	if s.Min != nil || s.Max != nil || s.Mean != nil {
		t.Error("text column must not report numeric aggregates")
	}
}

func TestDescribeMostFrequentTieBreaksFirstSeen(t *testing.T) {
	table, err := NewTable([]string{"c"}, [][]string{
		{"b"}, {"a"}, {"a"}, {"b"},
	})
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}
	s := Describe(table)[0]
	if s.MostFrequent == nil || *s.MostFrequent != "b" {
		t.Errorf("most frequent = %v, want first-seen b", s.MostFrequent)
	}
}

func TestDescribeAllMissingColumn(t *testing.T) {
	table, err := NewTable([]string{"empty"}, [][]string{
		{""}, {""}, {""},
	})
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}

	s := Describe(table)[0]
	if s.NonMissing != 0 || s.Missing != 3 {
		t.Errorf("counts = %d/%d, want 0/3", s.NonMissing, s.Missing)
	}
	// "No data" must stay distinguishable from "value is zero".
	if s.Min != nil || s.Max != nil || s.Mean != nil {
		t.Error("aggregates over zero values must be absent, not zero")
	}
	if s.Distinct != 0 || s.MostFrequent != nil {
		t.Errorf("distinct = %d, most frequent = %v, want 0 and absent", s.Distinct, s.MostFrequent)
	}
}

func TestDescribeDeclarationOrder(t *testing.T) {
	table, err := NewTable([]string{"z", "a", "m"}, [][]string{{"1", "2", "3"}})
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}
	stats := Describe(table)
	want := []string{"z", "a", "m"}
	for i, s := range stats {
		if s.Name != want[i] {
			t.Errorf("stats[%d] = %s, want %s", i, s.Name, want[i])
		}
	}
}
