// Package grid provides the rectangular cell grid the rent roll pipeline
// consumes, decoupled from any particular spreadsheet library.
package grid

import (
	"strconv"
	"strings"
	"time"
)

// Cell is one scalar spreadsheet value: string, float64, time.Time, or nil
// for an empty cell.
type Cell any

// Grid is a 2-D sheet of heterogeneous scalar cells with deterministic
// zero-based row/column addressing.
type Grid struct {
	rows [][]Cell
	cols int
}

// New builds a Grid from raw rows. Rows may be ragged; addressing beyond a
// row's width reads as empty.
func New(rows [][]Cell) Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return Grid{rows: rows, cols: cols}
}

// RowCount returns the number of rows.
func (g Grid) RowCount() int { return len(g.rows) }

// ColCount returns the widest row's column count.
func (g Grid) ColCount() int { return g.cols }

// Cell returns the value at (row, col), nil when out of range.
func (g Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// IsEmpty reports whether the cell at (row, col) is missing or blank.
func (g Grid) IsEmpty(row, col int) bool {
	return Text(g.Cell(row, col)) == ""
}

// Text returns the cell at (row, col) as display text, "" when empty.
func (g Grid) Text(row, col int) string {
	return Text(g.Cell(row, col))
}

// RowText joins the text of every non-empty cell in the row with single
// spaces, the form the keyword scanners match against.
func (g Grid) RowText(row int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	var parts []string
	for col := range g.rows[row] {
		if s := g.Text(row, col); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Text renders a single cell as display text.
func Text(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return ""
	}
}
