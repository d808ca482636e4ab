package rentroll

import (
	"time"

	"github.com/andrewbantly/leasepeek-server/internal/models"
)

// monthKeyLayout formats trend bucket keys, e.g. "2024-03".
const monthKeyLayout = "2006-01"

// LeaseTrends buckets lease starts by (calendar month, floor plan) over
// the 12 months ending at the as-of month and reports lease counts and
// average lease rate per square foot. When the as-of date is the sentinel
// the window falls back to today.
func LeaseTrends(units []models.UnitRecord, asOf string) map[string]map[string]models.LeaseTrendEntry {
	asOfDate, ok := parseAsOfDate(asOf)
	if !ok {
		asOfDate = time.Now()
	}

	months := make([]time.Time, 0, 12)
	first := time.Date(asOfDate.Year(), asOfDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 11; i >= 0; i-- {
		months = append(months, first.AddDate(0, -i, 0))
	}

	type bucket struct {
		rentSum int
		sqftSum int
		count   int
	}

	// Every (month, floorplan) pair is present in the result, zeroed when
	// no lease landed there.
	buckets := make(map[string]map[string]*bucket, len(months))
	for _, month := range months {
		key := month.Format(monthKeyLayout)
		buckets[key] = make(map[string]*bucket)
		for _, unit := range units {
			if _, ok := buckets[key][unit.Floorplan]; !ok {
				buckets[key][unit.Floorplan] = &bucket{}
			}
		}
	}

	for _, unit := range units {
		if setHas(leaseTrendExcludedStatuses, unit.Status) {
			continue
		}
		d, ok := sortDate(unit.MoveIn, unit.LeaseStart)
		if !ok {
			continue
		}
		key := d.Format(monthKeyLayout)
		plans, ok := buckets[key]
		if !ok {
			continue
		}
		b := plans[unit.Floorplan]
		if b == nil {
			b = &bucket{}
			plans[unit.Floorplan] = b
		}
		b.count++
		b.rentSum += unit.Rent
		b.sqftSum += unit.Sqft
	}

	trends := make(map[string]map[string]models.LeaseTrendEntry, len(buckets))
	for month, plans := range buckets {
		trends[month] = make(map[string]models.LeaseTrendEntry, len(plans))
		for plan, b := range plans {
			entry := models.LeaseTrendEntry{NumOfLeases: b.count}
			if b.sqftSum > 0 {
				entry.AvgLeasePerSqFt = round2(float64(b.rentSum) / float64(b.sqftSum))
			}
			trends[month][plan] = entry
		}
	}
	return trends
}
