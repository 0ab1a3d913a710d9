package parser

import "testing"

func TestDetectHeaderRow(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected int
	}{
		{
			name: "header on first row",
			rows: [][]string{
				{"Model Number", "Qty", "Net Price"},
				{"ModelX", "1", "100"},
			},
			expected: 0,
		},
		{
			name: "header after banner rows",
			rows: [][]string{
				{"ACME Corp"},
				{"Quotation Q-100"},
				{"", "Model Number", "Quantity", "Net Price"},
			},
			expected: 2,
		},
		{
			name: "no header",
			rows: [][]string{
				{"just", "some", "text"},
				{"1", "2", "3"},
			},
			expected: -1,
		},
		{
			name:     "empty sheet",
			rows:     nil,
			expected: -1,
		},
		{
			name: "too few token matches",
			rows: [][]string{
				{"Model", "Color", "Weight"},
			},
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectHeaderRow(tt.rows, 15, 4)
			if got != tt.expected {
				t.Errorf("DetectHeaderRow() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestDetectHeaderRowScanBound(t *testing.T) {
	rows := make([][]string, 20)
	for i := range rows {
		rows[i] = []string{"filler"}
	}
	rows[18] = []string{"Model Number", "Qty", "Net Price"}

	if got := DetectHeaderRow(rows, 15, 4); got != -1 {
		t.Errorf("header beyond scan bound should not be found, got %d", got)
	}
	if got := DetectHeaderRow(rows, 20, 4); got != 18 {
		t.Errorf("DetectHeaderRow() = %d, expected 18", got)
	}
}

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected Columns
		ok       bool
	}{
		{
			name:     "canonical titles",
			header:   []string{"Model Number", "Qty", "Net Price"},
			expected: Columns{Model: 0, Qty: 1, Price: 2},
			ok:       true,
		},
		{
			name:     "quantity synonym and case",
			header:   []string{"Description", "MODEL NUMBER", "QUANTITY", "net price"},
			expected: Columns{Model: 1, Qty: 2, Price: 3},
			ok:       true,
		},
		{
			name:     "exact beats substring",
			header:   []string{"Model Number / SKU", "Model Number", "Qty", "Net Price"},
			expected: Columns{Model: 1, Qty: 2, Price: 3},
			ok:       true,
		},
		{
			name:   "missing price column",
			header: []string{"Model Number", "Qty", "List Price"},
			ok:     false,
		},
		{
			name:   "missing quantity column",
			header: []string{"Model Number", "Net Price"},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveColumns(tt.header)
			if ok != tt.ok {
				t.Fatalf("ResolveColumns() ok = %v, expected %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("ResolveColumns() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}
