// Package rentroll converts vendor rent roll grids into canonical per-unit
// records and the portfolio reports derived from them.
package rentroll

// The tables below are immutable configuration: the vendor vocabulary the
// pipeline has been taught. They are loaded once and never mutated at run
// time. New vendor header variants are added here, not in control flow.

// titleKeywords mark candidate header rows during the leading-row scan.
var titleKeywords = []string{
	"Unit Type", "Floorplan", "Unit Sq Ft", "Name", "Market Rent",
	"Charge Code", "Amount", "Resident Deposit", "Other Deposit", "Move In",
	"Lease Expiration", "Move Out", "Balance", "Code", "Deposit",
	"Expiration", "Sq Ft", "SQFT",
}

// dataEndKeywords terminate the unit data section when found in a row's
// first cell.
var dataEndKeywords = []string{
	"Total", "Totals", "Totals:", "Total Market Rent", "Applications",
	"Summary Groups",
}

// chargeColumnLabels are header labels whose columns carry charge
// description/amount line items rather than one simple field per unit.
var chargeColumnLabels = newSet(
	"Charge Code", "Amount", "Rent Charge Description", "Rent Charge Amount",
	"Description", "Charge Amount", "Credit Amount",
)

// unitDescriberLabels identify the column whose non-empty cells start a new
// unit. Checked in order.
var unitDescriberLabels = []string{"Bldg/Unit", "Unit", "Unit Number"}

// Separator rows embed unit status between blocks of units instead of a
// status column.
const (
	separatorCurrentNoticeVacant = "Current/Notice/Vacant Residents"
	separatorFutureResidents     = "Future Residents/Applicants"
)

// propertyKeywords locate the property name row above the header.
var propertyKeywords = []string{
	"Building", "Property", "Village", "Apartment", "District", "North",
	"East", "West", "South", "Shadows", "Place", "Street", "Avenue",
	"Circle", "Court",
}

// Field is a canonical field name produced by the classifier.
type Field string

const (
	FieldUnit            Field = "unit"
	FieldAddress         Field = "address"
	FieldFloorplan       Field = "floorplan"
	FieldSqft            Field = "sqft"
	FieldMarket          Field = "market"
	FieldRent            Field = "rent"
	FieldStatus          Field = "status"
	FieldTenant          Field = "tenant"
	FieldResidentID      Field = "residentId"
	FieldMoveIn          Field = "moveIn"
	FieldMoveOut         Field = "moveOut"
	FieldLeaseDates      Field = "leaseDates"
	FieldLeaseStart      Field = "leaseStart"
	FieldLeaseExpire     Field = "leaseExpire"
	FieldResidentDeposit Field = "residentDeposit"
	FieldOtherDeposit    Field = "otherDeposit"
	FieldBalance         Field = "balance"
	FieldTotal           Field = "total"
	FieldNSF             Field = "nsf"
	FieldCharges         Field = "charges"
	FieldUnclassified    Field = "unclassified"
)

// fieldClassifier pairs a canonical field with the vendor header spellings
// that mean it. Evaluated in order, first exact match wins, so narrower
// vocabularies (unit, lease dates) sit above broader ones.
type fieldClassifier struct {
	field    Field
	keywords map[string]struct{}
}

var fieldClassifiers = []fieldClassifier{
	{FieldUnit, newSet("Unit", "Bldg/Unit", "Unit Number")},
	{FieldLeaseDates, newSet("Lease Dates")},
	{FieldAddress, newSet("Address Line 1")},
	{FieldFloorplan, newSet("Unit Type", "Floorplan", "Unit  Type", "Type")},
	{FieldSqft, newSet("sq ft", "sqft", "SQFT", "Unit Sq Ft", "Sq Ft", "Unit Sqft")},
	{FieldMarket, newSet("Market", "Market Rent", "Market + Addl.")},
	{FieldRent, newSet("Rent", "rnt", "rent", "Lease Rent", "RENT-Rent")},
	{FieldStatus, newSet("Status", "Unit/Lease Status", "Unit Status")},
	{FieldTenant, newSet("Name", "Tenant")},
	{FieldResidentID, newSet("Resident", "Lease ID", "Resh ID")},
	{FieldMoveIn, newSet("Move In", "Move-In", "Move IN Date")},
	{FieldMoveOut, newSet("Move Out", "Move-Out")},
	{FieldLeaseStart, newSet("Lease From", "Lease Start")},
	{FieldLeaseExpire, newSet("Lease Expiration", "Lease To", "Lease End", "Lease Expiration Date")},
	{FieldResidentDeposit, newSet("Resident Deposit", "Deposit", "Dep On Hand")},
	{FieldOtherDeposit, newSet("Other Deposit")},
	{FieldBalance, newSet("Balance", "Resident Balance", "Past Due")},
	{FieldTotal, newSet("Total", "Total Billing")},
	{FieldCharges, chargeCodes},
	{FieldNSF, newSet("NSF Count")},
}

// chargeCodes is the open-ended vocabulary of vendor line-item labels.
var chargeCodes = newSet(
	"rub", "valtsh", "cmf", "package", "pst", "prk", "covpark", "bbpest",
	"conciere", "bbtr", "zero", "ptr", "CNSVCpst", "mtm", "rubsew", "emp",
	"petf", "conc-prk", "insur", "stor", "svcanml", "conc-lmp", "conc-sto",
	"Utility", "Utility Recapture", "TECH", "PETF", "CONC", "STOR", "EMPL",
	"MODL", "OFCR", "LTOR-Loss To Lease In Force", "STOR-Storage Space #",
	"CABL-Cable Television Charges", "INTR-Internet Access", "PARK-Parking",
	"MTOM-Month To Month Charges", "RLL-PDLW", "LTOL-Loss To Lease In Force",
	"GAR-Garage Rental", "RLLG-PDLW LEGACY", "PETR-Pet Rent",
	"W/D Washer/Dryer Rental Charges", "VAC -Vacancy Loss",
	"GTOL-Gain To Lease In Force", "GTOR-Gain To Lease In Force",
	"W/D-Washer/Dryer Rental Charges", "PETF-Pet Fees Or Charges",
	"GAR-Garage Rental #", "MODE-Model", "park", "mtmf", "conc-rec",
)

// Charge codes that always represent deductions.
var (
	negativeChargeCodes    = newSet("MODE-Model", "LTOL-Loss To Lease In Force", "VAC -Vacancy Loss")
	vacancyLossChargeCodes = newSet("VAC -Vacancy Loss")
	modelLossChargeCodes   = newSet("MODE-Model")
)

// Status vocabulary for the canonicalizer.
var (
	combinedVacancyStatuses = newSet(separatorCurrentNoticeVacant, separatorFutureResidents)
	occupiedStatusKeywords  = newSet("Occupied", "occupied", "Occupied-NTV", "Occupied-NTVL", "O", "NR", "NU")
	vacantStatusKeywords    = newSet("Vacant", "vacant", "Vacant-Leased", "VU", "VR")
	downUnitKeywords        = newSet("down")
	modelUnitKeywords       = newSet("model")
)

// lossToLeaseExcludedStatuses drop future/former/pending units from the
// loss-to-lease sums.
var lossToLeaseExcludedStatuses = newSet(
	"upcoming", "approved", separatorFutureResidents, "Applicant",
	"Pending renewal", "Former resident", "Former applicant", "applicant",
)

// formerFutureStatuses exclude units from the recent-lease rankings.
var formerFutureStatuses = newSet(
	"Former resident", "Former applicant", separatorFutureResidents, "Applicant",
)

// leaseTrendExcludedStatuses drop units from the 12-month trend buckets.
var leaseTrendExcludedStatuses = newSet(
	"Former applicant", separatorFutureResidents, "Applicant",
)

// Vacancy report type sets, keyed off canonical (or vendor passthrough)
// statuses.
var (
	occupiedTypeStatuses       = newSet("Occupied", "Occupied-NTV", "Occupied-NTVL")
	vacantTypeStatuses         = newSet("Vacant", "Vacant-Leased")
	nonRevenueTypeStatuses     = newSet("Model", "Down")
	futureResidentTypeStatuses = newSet("Applicant", "upcoming", "approved", "Pending renewal")
)

func newSet(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func setHas(s map[string]struct{}, key string) bool {
	_, ok := s[key]
	return ok
}
