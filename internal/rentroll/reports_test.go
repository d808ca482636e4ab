package rentroll

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewbantly/leasepeek-server/internal/models"
)

func surveyUnits() []models.UnitRecord {
	return []models.UnitRecord{
		{Unit: "101", Floorplan: "A1", Status: StatusOccupied, Rent: 1150, Market: 1200, Sqft: 800},
		{Unit: "102", Floorplan: "A1", Status: StatusVacant, Rent: 0, Market: 1200, Sqft: 800},
		{Unit: "201", Floorplan: "B2", Status: StatusOccupied, Rent: 1500, Market: 1600, Sqft: 1100},
		{Unit: "202", Floorplan: "B2", Status: StatusModel, Rent: 0, Market: 1600, Sqft: 1100},
		{Unit: "203", Floorplan: "B2", Status: StatusApplicant, Rent: 1550, Market: 1600, Sqft: 1100},
	}
}

func TestFloorplanSurvey(t *testing.T) {
	survey := FloorplanSurvey(surveyUnits())
	require.Len(t, survey, 2)

	a1 := survey["A1"]
	require.Equal(t, 2, a1.UnitCount)
	require.Equal(t, 2400, a1.SumMarket)
	require.Equal(t, 1200.0, a1.AvgMarket)
	require.Equal(t, 800.0, a1.AvgSqft)
	// Rent figures cover occupied units only.
	require.Equal(t, 1150, a1.SumRent)
	require.Equal(t, 1150.0, a1.AvgRent)
	require.Equal(t, map[string]int{StatusOccupied: 1, StatusVacant: 1}, a1.UnitStatuses)

	b2 := survey["B2"]
	require.Equal(t, 3, b2.UnitCount)
	require.Equal(t, 1500, b2.SumRent)
	require.Equal(t, 1500.0, b2.AvgRent)
}

func TestFloorplanSurveyNoOccupiedUnitsZeroAverage(t *testing.T) {
	units := []models.UnitRecord{
		{Unit: "101", Floorplan: "A1", Status: StatusVacant, Market: 1200},
		{Unit: "102", Floorplan: "A1", Status: StatusDown, Market: 1200},
	}
	survey := FloorplanSurvey(units)
	require.Equal(t, 0.0, survey["A1"].AvgRent)
	require.Equal(t, 1200.0, survey["A1"].AvgMarket)
}

func TestFloorplanSurveyPartitionsUnits(t *testing.T) {
	units := surveyUnits()
	survey := FloorplanSurvey(units)

	total := 0
	for _, summary := range survey {
		total += summary.UnitCount
	}
	require.Equal(t, len(units), total)
	require.Equal(t, len(units), TotalUnits(units))
}

func TestTotalUnitsCountsDistinctIdentifiers(t *testing.T) {
	units := []models.UnitRecord{
		{Unit: "101"}, {Unit: "101"}, {Unit: "102"},
	}
	require.Equal(t, 2, TotalUnits(units))
}

func TestVacancyReport(t *testing.T) {
	report := VacancyReport(surveyUnits())

	require.Equal(t, models.VacancyEntry{Count: 2, Type: "occupied"}, report[StatusOccupied])
	require.Equal(t, models.VacancyEntry{Count: 1, Type: "vacant"}, report[StatusVacant])
	require.Equal(t, models.VacancyEntry{Count: 1, Type: "nonRevenue"}, report[StatusModel])
	require.Equal(t, models.VacancyEntry{Count: 1, Type: "futureResident"}, report[StatusApplicant])
}

func TestVacancyReportVendorPassthroughHasEmptyType(t *testing.T) {
	report := VacancyReport([]models.UnitRecord{{Unit: "101", Status: "Renewal Hold"}})
	require.Equal(t, models.VacancyEntry{Count: 1, Type: ""}, report["Renewal Hold"])
}

func TestFindLossToLeaseExcludesFutureAndFormer(t *testing.T) {
	units := surveyUnits()
	ltl := FindLossToLease(units)

	// The applicant unit (market 1600, rent 1550) must not contribute.
	require.Equal(t, 1200+1200+1600+1600, ltl.MarketSum)
	require.Equal(t, 1150+0+1500+0, ltl.RentIncome)
}

func TestChargeCodeRollup(t *testing.T) {
	units := []models.UnitRecord{
		{Unit: "101", Charges: []models.Charge{{Code: "rub", Value: 25}, {Code: "petf", Value: 50}}},
		{Unit: "102", Charges: []models.Charge{{Code: "rub", Value: 10}}},
		{Unit: "103", Charges: []models.Charge{{Code: "VAC -Vacancy Loss", Value: -1150}}},
	}
	ltl := models.LossToLease{MarketSum: 3600, RentIncome: 2650}

	charges := ChargeCodeRollup(units, ltl)
	require.Equal(t, models.ChargeSummary{Value: 2650, Type: "contractualRent"}, charges["rent"])
	require.Equal(t, 35, charges["rub"].Value)
	require.Equal(t, 50, charges["petf"].Value)
	require.Equal(t, -1150, charges["VAC -Vacancy Loss"].Value)
}

func TestOutstandingBalance(t *testing.T) {
	units := []models.UnitRecord{
		{Unit: "101", Balance: -2419.23},
		{Unit: "102", Balance: 100},
		{Unit: "103"},
	}
	require.InDelta(t, -2319.23, OutstandingBalance(units), 0.0001)
}

func TestOutstandingBalanceEmpty(t *testing.T) {
	require.Zero(t, OutstandingBalance(nil))
}
