package rentroll

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/andrewbantly/leasepeek-server/internal/grid"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// DateNotFound is the sentinel yielded when neither the grid nor the file
// name carries an as-of date. Every date-window report must tolerate it.
const DateNotFound = "Date not found"

var (
	fullDatePattern  = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	monthYearPattern = regexp.MustCompile(`(\d{1,2})/(\d{4})`)
	fileDatePattern  = regexp.MustCompile(`(\d{1,2})[._-](\d{1,2})[._-](\d{2,4})`)
)

// FindAsOfDate searches rows above the title row for a date-shaped token,
// falling back to the file name, and returns MM/DD/YYYY or the DateNotFound
// sentinel. A month/year token resolves to the first of that month.
func FindAsOfDate(g grid.Grid, titleRow int, fileName string) string {
	for row := 0; row < titleRow && row < g.RowCount(); row++ {
		text := g.RowText(row)
		if m := fullDatePattern.FindStringSubmatch(text); m != nil {
			return formatAsOf(m[1], m[2], m[3])
		}
		if m := monthYearPattern.FindStringSubmatch(text); m != nil {
			return formatAsOf(m[1], "1", m[2])
		}
	}

	if m := fileDatePattern.FindStringSubmatch(fileName); m != nil {
		return formatAsOf(m[1], m[2], m[3])
	}

	utils.Logger.Warn("As-of date not found in sheet or file name")
	return DateNotFound
}

// formatAsOf normalizes loose month/day/year tokens to MM/DD/YYYY,
// promoting two-digit years to 20YY.
func formatAsOf(month, day, year string) string {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)
	if len(year) == 2 {
		y += 2000
	}
	return fmt.Sprintf("%02d/%02d/%04d", m, d, y)
}
