package rentroll

import (
	"sort"
	"time"

	"github.com/andrewbantly/leasepeek-server/internal/models"
)

// Trailing window keys of the recent-lease report.
const (
	windowLast90Days = "last_90_days"
	windowLast60Days = "last_60_days"
	windowLast30Days = "last_30_days"
)

// RecentLeases ranks units by move-in (or lease start) date and reports,
// per floor plan, the two most recent leases plus 30/60/90-day trailing
// windows ending at the as-of date. Former/future residents are excluded
// from the ranking. With the as-of sentinel the recent-two figures are
// still produced and the trailing windows stay zero.
func RecentLeases(units []models.UnitRecord, asOf string) map[string]models.RecentLeaseReport {
	asOfDate, haveAsOf := parseAsOfDate(asOf)

	type datedUnit struct {
		unit models.UnitRecord
		date time.Time
	}

	var dated []datedUnit
	for _, unit := range units {
		if setHas(formerFutureStatuses, unit.Status) {
			continue
		}
		d, ok := sortDate(unit.MoveIn, unit.LeaseStart)
		if !ok {
			continue
		}
		dated = append(dated, datedUnit{unit: unit, date: d})
	}
	sort.SliceStable(dated, func(i, j int) bool { return dated[i].date.After(dated[j].date) })

	windowStarts := map[string]time.Time{}
	if haveAsOf {
		windowStarts[windowLast90Days] = asOfDate.AddDate(0, 0, -90)
		windowStarts[windowLast60Days] = asOfDate.AddDate(0, 0, -60)
		windowStarts[windowLast30Days] = asOfDate.AddDate(0, 0, -30)
	}

	type accum struct {
		recentTwo []int // rents of the up-to-two most recent leases
		windows   map[string]*models.LeaseWindow
	}

	plans := make(map[string]*accum)
	for _, d := range dated {
		acc := plans[d.unit.Floorplan]
		if acc == nil {
			acc = &accum{windows: map[string]*models.LeaseWindow{
				windowLast90Days: {},
				windowLast60Days: {},
				windowLast30Days: {},
			}}
			plans[d.unit.Floorplan] = acc
		}
		if len(acc.recentTwo) < 2 {
			acc.recentTwo = append(acc.recentTwo, d.unit.Rent)
		}
		if !haveAsOf {
			continue
		}
		for name, start := range windowStarts {
			if !d.date.Before(start) && !d.date.After(asOfDate) {
				acc.windows[name].Count++
				acc.windows[name].TotalRent += d.unit.Rent
			}
		}
	}

	report := make(map[string]models.RecentLeaseReport, len(plans))
	for plan, acc := range plans {
		entry := models.RecentLeaseReport{Windows: make(map[string]models.LeaseWindow, 3)}
		for _, rent := range acc.recentTwo {
			entry.RecentTwo.Count++
			entry.RecentTwo.TotalRent += rent
		}
		entry.RecentTwo.AverageRent = averageRent(entry.RecentTwo)
		for name, w := range acc.windows {
			w.AverageRent = averageRent(*w)
			entry.Windows[name] = *w
		}
		report[plan] = entry
	}
	return report
}

func averageRent(w models.LeaseWindow) float64 {
	if w.Count == 0 {
		return 0
	}
	return round2(float64(w.TotalRent) / float64(w.Count))
}
