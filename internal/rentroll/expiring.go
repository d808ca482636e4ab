package rentroll

import (
	"github.com/andrewbantly/leasepeek-server/internal/models"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// ExpiringLeases reports, per floor plan, leases expiring within 90 days
// of the as-of date versus already expired. Every floor plan appears in
// the result even when no lease qualifies. Unparsable expiration dates
// are logged and skipped, never fatal; the as-of sentinel yields a
// well-formed all-zero report.
func ExpiringLeases(units []models.UnitRecord, asOf string) map[string]models.ExpiringLeaseReport {
	report := make(map[string]models.ExpiringLeaseReport)
	for _, unit := range units {
		if _, ok := report[unit.Floorplan]; !ok {
			report[unit.Floorplan] = models.ExpiringLeaseReport{}
		}
	}

	asOfDate, haveAsOf := parseAsOfDate(asOf)
	if !haveAsOf {
		return report
	}
	horizon := asOfDate.AddDate(0, 0, 90)

	for _, unit := range units {
		if unit.LeaseExpire == "" {
			continue
		}
		expire, err := parseExpireDate(unit.LeaseExpire)
		if err != nil {
			utils.Logger.Warnf("Cannot determine lease expiration of unit %q: invalid date %q", unit.Unit, unit.LeaseExpire)
			continue
		}

		entry := report[unit.Floorplan]
		switch {
		case !expire.Before(asOfDate) && !expire.After(horizon):
			entry.ExpiringIn90Days.Count++
			entry.ExpiringIn90Days.TotalRent += unit.Rent
		case expire.Before(asOfDate):
			entry.Expired.Count++
			entry.Expired.TotalRent += unit.Rent
		}
		report[unit.Floorplan] = entry
	}

	for plan, entry := range report {
		entry.ExpiringIn90Days.AverageRent = averageRent(entry.ExpiringIn90Days)
		entry.Expired.AverageRent = averageRent(entry.Expired)
		report[plan] = entry
	}
	return report
}
