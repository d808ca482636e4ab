package rentroll

import (
	"github.com/andrewbantly/leasepeek-server/internal/models"
)

// FindLossToLease sums market rent and contracted rent across all units
// except future/former/pending residents.
func FindLossToLease(units []models.UnitRecord) models.LossToLease {
	var ltl models.LossToLease
	for _, unit := range units {
		if setHas(lossToLeaseExcludedStatuses, unit.Status) {
			continue
		}
		ltl.MarketSum += unit.Market
		ltl.RentIncome += unit.Rent
	}
	return ltl
}
