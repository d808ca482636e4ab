package rentroll

import (
	"github.com/andrewbantly/leasepeek-server/internal/models"
)

// ChargeCodeRollup sums every charge code across every unit into a single
// portfolio-wide total per code, seeded with a synthetic rent charge
// carrying the loss-to-lease rent income.
func ChargeCodeRollup(units []models.UnitRecord, lossToLease models.LossToLease) map[string]models.ChargeSummary {
	charges := map[string]models.ChargeSummary{
		"rent": {
			Value: lossToLease.RentIncome,
			Type:  "contractualRent",
		},
	}

	for _, unit := range units {
		for _, charge := range unit.Charges {
			summary := charges[charge.Code]
			summary.Value += charge.Value
			charges[charge.Code] = summary
		}
	}
	return charges
}

// OutstandingBalance sums every unit's balance into one portfolio total.
func OutstandingBalance(units []models.UnitRecord) float64 {
	var balance float64
	for _, unit := range units {
		balance += unit.Balance
	}
	return balance
}
