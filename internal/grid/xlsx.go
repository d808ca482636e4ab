package grid

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Date layouts excelize renders date-styled cells with, plus the layouts
// rent roll vendors type into text cells.
var cellDateLayouts = []string{
	"01-02-06",
	"1-2-06",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// FromXLSX reads the first sheet of an .xlsx stream into a Grid. Numeric
// text becomes float64 cells, date-shaped text becomes time.Time cells,
// everything else stays a string.
func FromXLSX(r io.Reader) (Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Grid{}, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Grid{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Grid{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, raw := range row {
			cells[i][j] = parseCell(raw)
		}
	}
	return New(cells), nil
}

// parseCell types a raw cell string: empty, number, date, or plain text.
func parseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	for _, layout := range cellDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return s
}
