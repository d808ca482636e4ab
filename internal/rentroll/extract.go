package rentroll

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/andrewbantly/leasepeek-server/internal/grid"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// ErrNoUnitColumn means the header carries no recognizable unit describer
// column, so rows cannot be grouped into units.
var ErrNoUnitColumn = errors.New("no unit describer column found in header")

// statusLabel is the synthetic key used when status arrives via separator
// rows instead of a column.
const statusLabel = "Status"

// RawField is one (header label, raw cell value) pair of a unit.
type RawField struct {
	Label string
	Value grid.Cell
}

// RawUnitRecord is the ordered raw field map for one physical unit.
// Ordering follows column order of first appearance; repeated charge lines
// for the same code accumulate into one field.
type RawUnitRecord struct {
	fields []RawField
	index  map[string]int
}

func newRawUnitRecord() *RawUnitRecord {
	return &RawUnitRecord{index: make(map[string]int)}
}

// Set stores a simple field value, replacing any earlier value.
func (r *RawUnitRecord) Set(label string, v grid.Cell) {
	if i, ok := r.index[label]; ok {
		r.fields[i].Value = v
		return
	}
	r.index[label] = len(r.fields)
	r.fields = append(r.fields, RawField{Label: label, Value: v})
}

// AddCharge records a charge line, adding to the amount when the code has
// already appeared on an earlier row of the same unit.
func (r *RawUnitRecord) AddCharge(code string, amount float64) {
	if i, ok := r.index[code]; ok {
		if prev, isNum := r.fields[i].Value.(float64); isNum {
			r.fields[i].Value = prev + amount
			return
		}
	}
	r.Set(code, amount)
}

// Fields returns the record's fields in insertion order.
func (r *RawUnitRecord) Fields() []RawField { return r.fields }

// Get returns the raw value stored under label.
func (r *RawUnitRecord) Get(label string) (grid.Cell, bool) {
	i, ok := r.index[label]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Len returns the number of stored fields.
func (r *RawUnitRecord) Len() int { return len(r.fields) }

// columnSplit separates the header mapping into simple one-field columns
// and charge line-item columns, each in ascending column order.
type columnSplit struct {
	simple  []colLabel
	charges []colLabel
	unitCol int
}

type colLabel struct {
	col   int
	label string
}

func splitColumns(mapping ColumnMapping) (columnSplit, error) {
	split := columnSplit{unitCol: -1}
	for label, col := range mapping.Columns {
		if setHas(chargeColumnLabels, label) {
			split.charges = append(split.charges, colLabel{col, label})
		} else {
			split.simple = append(split.simple, colLabel{col, label})
		}
	}
	sort.Slice(split.simple, func(i, j int) bool { return split.simple[i].col < split.simple[j].col })
	sort.Slice(split.charges, func(i, j int) bool { return split.charges[i].col < split.charges[j].col })

	for _, label := range unitDescriberLabels {
		if col, ok := mapping.Columns[label]; ok {
			split.unitCol = col
			break
		}
	}
	if split.unitCol < 0 {
		return split, ErrNoUnitColumn
	}
	return split, nil
}

// ExtractRows walks the grid from the title-row boundary to the terminator
// row, assembling one RawUnitRecord per physical unit. Rows whose unit
// describer cell is empty are continuations carrying only charge lines.
// Status separator rows set an ambient status applied to every unit started
// after them. A missing terminator is logged and the walk continues to the
// end of the sheet.
func ExtractRows(g grid.Grid, mapping ColumnMapping) ([]*RawUnitRecord, error) {
	split, err := splitColumns(mapping)
	if err != nil {
		return nil, err
	}

	start := mapping.TitleRow + 1
	end := findDataEnd(g, start)

	var (
		records []*RawUnitRecord
		current *RawUnitRecord
		status  string
	)

	flush := func() {
		if current != nil && current.Len() > 0 {
			records = append(records, current)
		}
		current = nil
	}

	for row := start; row < end; row++ {
		first := g.Text(row, 0)
		if first == separatorCurrentNoticeVacant || first == separatorFutureResidents {
			status = first
			continue
		}

		if !g.IsEmpty(row, split.unitCol) {
			flush()
			current = newRawUnitRecord()
			if status != "" {
				current.Set(statusLabel, status)
			}
			for _, c := range split.simple {
				current.Set(c.label, simpleCellValue(g.Cell(row, c.col)))
			}
		}

		if len(split.charges) > 0 && current != nil {
			extractChargeLine(g, row, split.charges, current)
		}
	}
	flush()

	return records, nil
}

// findDataEnd locates the terminator row. When none exists the whole
// remaining sheet is treated as data.
func findDataEnd(g grid.Grid, start int) int {
	for row := start; row < g.RowCount(); row++ {
		first := g.Text(row, 0)
		if first == "" {
			continue
		}
		for _, kw := range dataEndKeywords {
			if strings.Contains(first, kw) {
				return row
			}
		}
	}
	utils.Logger.Warn("Data read error: no ending row for unit data recognized, reading to end of sheet")
	return g.RowCount()
}

// simpleCellValue normalizes a simple-column cell: date cells become ISO
// strings, empty cells become empty strings.
func simpleCellValue(c grid.Cell) grid.Cell {
	switch v := c.(type) {
	case time.Time:
		return v.Format("2006-01-02")
	case nil:
		return ""
	default:
		return v
	}
}

// extractChargeLine pairs the string description cell with the numeric
// amount cell among the charge columns of one row. Multiple complete pairs
// in a single row are each recorded.
func extractChargeLine(g grid.Grid, row int, charges []colLabel, current *RawUnitRecord) {
	var (
		code   string
		amount float64
		seen   bool
	)
	for _, c := range charges {
		switch v := g.Cell(row, c.col).(type) {
		case string:
			code = strings.TrimSpace(v)
		case float64:
			amount = v
			seen = true
		}
		if code != "" && seen && amount != 0 {
			current.AddCharge(code, amount)
			code = ""
			amount = 0
			seen = false
		}
	}
}
