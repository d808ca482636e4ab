package rentroll

import (
	"strings"

	"github.com/andrewbantly/leasepeek-server/internal/grid"
)

// headerScanRows bounds the leading-row window searched for the title row.
const headerScanRows = 15

// ColumnMapping maps each canonical header label to its zero-based column
// index. TitleRow is the boundary row: unit data begins on the next row.
// Labels are unique; a repeated label caused by merged header cells keeps
// the first column and suppresses the rest.
type ColumnMapping struct {
	Columns  map[string]int
	TitleRow int
}

// Empty reports whether no header row was found, which makes the file
// unusable for ingestion.
func (m ColumnMapping) Empty() bool { return len(m.Columns) == 0 }

// LocateHeader scans the leading grid rows for header keywords and resolves
// a single- or two-row header into a ColumnMapping. When two or more
// candidate rows are found the first two are treated as a split header and
// each column's label is the concatenation of both cells. Returns an empty
// mapping when no candidate row exists.
func LocateHeader(g grid.Grid) ColumnMapping {
	var candidates []int
	limit := headerScanRows
	if g.RowCount() < limit {
		limit = g.RowCount()
	}
	for row := 0; row < limit; row++ {
		text := g.RowText(row)
		for _, kw := range titleKeywords {
			if strings.Contains(text, kw) {
				candidates = append(candidates, row)
				break
			}
		}
	}
	if len(candidates) == 0 {
		return ColumnMapping{Columns: map[string]int{}}
	}

	mapping := ColumnMapping{
		Columns:  make(map[string]int),
		TitleRow: candidates[len(candidates)-1],
	}

	if len(candidates) >= 2 {
		first, second := candidates[0], candidates[1]
		seen := map[string]struct{}{}
		for col := 0; col < g.ColCount(); col++ {
			title := g.Text(first, col)
			if s := g.Text(second, col); s != "" {
				if title != "" {
					title += " "
				}
				title += s
			}
			title = cleanTitle(title)
			if title == "" {
				continue
			}
			if _, dup := seen[title]; dup {
				// Merged-cell repetition, not a real second field.
				continue
			}
			seen[title] = struct{}{}
			mapping.Columns[title] = col
		}
		return mapping
	}

	row := candidates[0]
	seen := map[string]struct{}{}
	for col := 0; col < g.ColCount(); col++ {
		title := cleanTitle(g.Text(row, col))
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		mapping.Columns[title] = col
	}
	return mapping
}

func cleanTitle(title string) string {
	return strings.TrimSpace(strings.ReplaceAll(title, "\n", " "))
}
