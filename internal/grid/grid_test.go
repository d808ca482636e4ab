package grid

import (
	"testing"
	"time"
)

func TestGridAddressing(t *testing.T) {
	g := New([][]Cell{
		{"Unit", "Market Rent"},
		{"101", 1200.0, "extra"},
		{},
	})

	if got := g.RowCount(); got != 3 {
		t.Fatalf("RowCount = %d, want 3", got)
	}
	if got := g.ColCount(); got != 3 {
		t.Fatalf("ColCount = %d, want 3", got)
	}
	if got := g.Cell(1, 1); got != 1200.0 {
		t.Fatalf("Cell(1,1) = %v, want 1200", got)
	}

	// Ragged and out-of-range addressing reads as empty.
	if got := g.Cell(0, 2); got != nil {
		t.Fatalf("Cell(0,2) = %v, want nil", got)
	}
	if got := g.Cell(5, 0); got != nil {
		t.Fatalf("Cell(5,0) = %v, want nil", got)
	}
	if !g.IsEmpty(2, 0) {
		t.Fatal("IsEmpty(2,0) = false, want true")
	}
}

func TestCellText(t *testing.T) {
	cases := []struct {
		in   Cell
		want string
	}{
		{nil, ""},
		{"  hello  ", "hello"},
		{1200.0, "1200"},
		{1234.5, "1234.5"},
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-03-01"},
	}
	for _, tc := range cases {
		if got := Text(tc.in); got != tc.want {
			t.Fatalf("Text(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRowText(t *testing.T) {
	g := New([][]Cell{
		{"Unit", nil, "Market Rent", 800.0},
	})
	if got := g.RowText(0); got != "Unit Market Rent 800" {
		t.Fatalf("RowText = %q", got)
	}
	if got := g.RowText(9); got != "" {
		t.Fatalf("RowText out of range = %q, want empty", got)
	}
}
