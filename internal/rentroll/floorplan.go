package rentroll

import (
	"github.com/andrewbantly/leasepeek-server/internal/models"
)

// FloorplanSurvey groups units by floor plan code. Market and sqft
// averages cover every unit in the group; rent figures cover only units
// whose canonical status is occupied, with averages zero-guarded when no
// qualifying unit exists. The descriptive fields (plan name, type, beds,
// baths, renovated) stay at their defaults until completed manually.
func FloorplanSurvey(units []models.UnitRecord) map[string]models.FloorplanSummary {
	type planAccum struct {
		marketSum int
		rentSum   int
		rentCount int
		sqftSum   int
		count     int
		statuses  map[string]int
	}

	plans := make(map[string]*planAccum)
	for _, unit := range units {
		acc := plans[unit.Floorplan]
		if acc == nil {
			acc = &planAccum{statuses: make(map[string]int)}
			plans[unit.Floorplan] = acc
		}
		acc.count++
		acc.marketSum += unit.Market
		acc.sqftSum += unit.Sqft
		if unit.Status != "" {
			acc.statuses[unit.Status]++
		}
		if statusIsOccupied(unit.Status) {
			acc.rentSum += unit.Rent
			acc.rentCount++
		}
	}

	survey := make(map[string]models.FloorplanSummary, len(plans))
	for plan, acc := range plans {
		summary := models.FloorplanSummary{
			SumRent:      acc.rentSum,
			SumMarket:    acc.marketSum,
			UnitCount:    acc.count,
			UnitStatuses: acc.statuses,
		}
		if acc.count > 0 {
			summary.AvgMarket = round2(float64(acc.marketSum) / float64(acc.count))
			summary.AvgSqft = round2(float64(acc.sqftSum) / float64(acc.count))
		}
		if acc.rentCount > 0 {
			summary.AvgRent = round2(float64(acc.rentSum) / float64(acc.rentCount))
		}
		survey[plan] = summary
	}
	return survey
}

// TotalUnits counts distinct unit identifiers.
func TotalUnits(units []models.UnitRecord) int {
	seen := make(map[string]struct{}, len(units))
	for _, unit := range units {
		seen[unit.Unit] = struct{}{}
	}
	return len(seen)
}
