package rentroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyHeader(t *testing.T) {
	cases := []struct {
		label string
		want  Field
	}{
		{"Bldg/Unit", FieldUnit},
		{"Unit Number", FieldUnit},
		{"Lease Dates", FieldLeaseDates},
		{"Unit Type", FieldFloorplan},
		{"Unit Sq Ft", FieldSqft},
		{"Market + Addl.", FieldMarket},
		{"RENT-Rent", FieldRent},
		{"Unit/Lease Status", FieldStatus},
		{"Name", FieldTenant},
		{"Resh ID", FieldResidentID},
		{"Move IN Date", FieldMoveIn},
		{"Lease Expiration Date", FieldLeaseExpire},
		{"Dep On Hand", FieldResidentDeposit},
		{"Past Due", FieldBalance},
		{"Total Billing", FieldTotal},
		{"LTOL-Loss To Lease In Force", FieldCharges},
		{"NSF Count", FieldNSF},
		{"Something Unheard Of", FieldUnclassified},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ClassifyHeader(tc.label), "label %q", tc.label)
	}
}

func TestClassifyHeaderOrderUnitBeforeTotal(t *testing.T) {
	// "Unit" and "Total" both appear in several vocabularies; the ordered
	// table must resolve them to the narrow field.
	require.Equal(t, FieldUnit, ClassifyHeader("Unit"))
	require.Equal(t, FieldTotal, ClassifyHeader("Total"))
}

func TestNormalizeRecordCurrencyCleaning(t *testing.T) {
	r := newRawUnitRecord()
	r.Set("Unit", "101")
	r.Set("Market Rent", "1,234.50*")
	r.Set("Rent", 1150.0)
	r.Set("Balance", "-12.34")

	units := NormalizeRecords([]*RawUnitRecord{r})
	require.Len(t, units, 1)

	unit := units[0]
	require.Equal(t, "101", unit.Unit)
	require.Equal(t, 1235, unit.Market)
	require.Equal(t, 1150, unit.Rent)
	require.Equal(t, -12.34, unit.Balance)
}

func TestNormalizeRecordCoercionFailureKeepsRaw(t *testing.T) {
	r := newRawUnitRecord()
	r.Set("Unit", "101")
	r.Set("Sq Ft", "n/a")

	unit := NormalizeRecords([]*RawUnitRecord{r})[0]
	require.Zero(t, unit.Sqft)
	require.Equal(t, "n/a", unit.Unclassified["Sq Ft"])
}

func TestNormalizeRecordUnclassifiedRetained(t *testing.T) {
	r := newRawUnitRecord()
	r.Set("Unit", "101")
	r.Set("Mystery Column", "hello")

	unit := NormalizeRecords([]*RawUnitRecord{r})[0]
	require.Equal(t, "hello", unit.Unclassified["Mystery Column"])
}

func TestNormalizeRecordNegativeChargeCodes(t *testing.T) {
	r := newRawUnitRecord()
	r.Set("Unit", "101")
	r.AddCharge("LTOL-Loss To Lease In Force", 75.0)

	unit := NormalizeRecords([]*RawUnitRecord{r})[0]
	require.Len(t, unit.Charges, 1)
	require.Equal(t, -75, unit.Charges[0].Value)
}

func TestNormalizeRecordVacancyLossFoldsIntoRent(t *testing.T) {
	r := newRawUnitRecord()
	r.Set("Unit", "101")
	r.Set("Rent", 0.0)
	r.AddCharge("VAC -Vacancy Loss", 1150.0)

	unit := NormalizeRecords([]*RawUnitRecord{r})[0]
	require.Equal(t, -1150, unit.Charges[0].Value)
	require.Equal(t, -1150, unit.Rent)
}

func TestNormalizeRecordModelLossFoldsIntoRent(t *testing.T) {
	r := newRawUnitRecord()
	r.Set("Unit", "101")
	r.Set("Rent", 0.0)
	r.AddCharge("MODE-Model", 900.0)

	unit := NormalizeRecords([]*RawUnitRecord{r})[0]
	require.Equal(t, -900, unit.Rent)
}

func TestNormalizeRecordLeaseDatesSplit(t *testing.T) {
	r := newRawUnitRecord()
	r.Set("Unit", "101")
	r.Set("Lease Dates", "01/15/2024 01/14/2025")

	unit := NormalizeRecords([]*RawUnitRecord{r})[0]
	require.Equal(t, "2024-01-15", unit.LeaseStart)
	require.Equal(t, "2025-01-14", unit.LeaseExpire)
}

func TestNormalizeRecordLeaseDatesWrongShapeIgnored(t *testing.T) {
	r := newRawUnitRecord()
	r.Set("Unit", "101")
	r.Set("Lease Dates", "January through December")

	unit := NormalizeRecords([]*RawUnitRecord{r})[0]
	require.Empty(t, unit.LeaseStart)
	require.Empty(t, unit.LeaseExpire)
}

func TestNormalizeRecordEmptyStringsCoerceToZero(t *testing.T) {
	r := newRawUnitRecord()
	r.Set("Unit", "101")
	r.Set("Market Rent", "")
	r.Set("Balance", "")

	unit := NormalizeRecords([]*RawUnitRecord{r})[0]
	require.Zero(t, unit.Market)
	require.Zero(t, unit.Balance)
	require.Empty(t, unit.Unclassified)
}
