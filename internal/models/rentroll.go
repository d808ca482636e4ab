package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Charge is a single vendor line item billed alongside rent. Values for
// loss-type codes (vacancy loss, model loss) are stored negative.
type Charge struct {
	Code  string `bson:"code" json:"code"`
	Value int    `bson:"value" json:"value"`
}

// UnitRecord is the canonical fixed-schema record for one physical unit.
// Numeric fields default to zero, identifier and date fields to empty
// strings. Unclassified holds every header the classifier could not map,
// keyed by original header text.
type UnitRecord struct {
	Unit            string         `bson:"unit" json:"unit"`
	Address         string         `bson:"address" json:"address"`
	Floorplan       string         `bson:"floorplan" json:"floorplan"`
	Sqft            int            `bson:"sqft" json:"sqft"`
	Market          int            `bson:"market" json:"market"`
	Rent            int            `bson:"rent" json:"rent"`
	Status          string         `bson:"status" json:"status"`
	Tenant          string         `bson:"tenant" json:"tenant"`
	ResidentID      string         `bson:"residentId" json:"residentId"`
	MoveIn          string         `bson:"moveIn" json:"moveIn"`
	MoveOut         string         `bson:"moveOut" json:"moveOut"`
	LeaseStart      string         `bson:"leaseStart" json:"leaseStart"`
	LeaseExpire     string         `bson:"leaseExpire" json:"leaseExpire"`
	ResidentDeposit int            `bson:"residentDeposit" json:"residentDeposit"`
	OtherDeposit    int            `bson:"otherDeposit" json:"otherDeposit"`
	Balance         float64        `bson:"balance" json:"balance"`
	Total           int            `bson:"total" json:"total"`
	NSF             string         `bson:"nsf" json:"nsf"`
	Charges         []Charge       `bson:"charges" json:"charges"`
	Unclassified    map[string]any `bson:"unclassified" json:"unclassified"`
}

// Location describes the property. Only Building is filled by ingestion;
// the address sub-fields are completed manually afterwards.
type Location struct {
	Building     string `bson:"building" json:"building"`
	AddressLine1 string `bson:"addressLine1" json:"addressLine1"`
	AddressLine2 string `bson:"addressLine2" json:"addressLine2"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	ZipCode      string `bson:"zipCode" json:"zipCode"`
}

// FloorplanSummary aggregates the units sharing one floor plan code.
// Rent figures cover occupied units only; market and sqft cover all units.
type FloorplanSummary struct {
	AvgRent      float64        `bson:"avgRent" json:"avgRent"`
	SumRent      int            `bson:"sumRent" json:"sumRent"`
	AvgMarket    float64        `bson:"avgMarket" json:"avgMarket"`
	SumMarket    int            `bson:"sumMarket" json:"sumMarket"`
	UnitCount    int            `bson:"unitCount" json:"unitCount"`
	AvgSqft      float64        `bson:"avgSqft" json:"avgSqft"`
	UnitStatuses map[string]int `bson:"unitStatuses" json:"unitStatuses"`
	PlanName     string         `bson:"planName" json:"planName"`
	PlanType     string         `bson:"planType" json:"planType"`
	Beds         int            `bson:"beds" json:"beds"`
	Baths        float64        `bson:"baths" json:"baths"`
	Renovated    bool           `bson:"renovated" json:"renovated"`
}

// VacancyEntry counts units in one canonical status. Type is one of
// "occupied", "vacant", "nonRevenue", "futureResident" or empty when the
// status is a vendor passthrough the type sets do not cover.
type VacancyEntry struct {
	Count int    `bson:"count" json:"count"`
	Type  string `bson:"type" json:"type"`
}

// LossToLease is the gap between market rent and contracted rent across
// the portfolio.
type LossToLease struct {
	MarketSum  int `bson:"marketSum" json:"marketSum"`
	RentIncome int `bson:"rentIncome" json:"rentIncome"`
}

// ChargeSummary is the portfolio-wide total for one charge code.
type ChargeSummary struct {
	Value int    `bson:"value" json:"value"`
	Type  string `bson:"type" json:"type"`
}

// LeaseWindow aggregates a date-filtered subset of units.
type LeaseWindow struct {
	Count       int     `bson:"count" json:"count"`
	TotalRent   int     `bson:"total_rent" json:"total_rent"`
	AverageRent float64 `bson:"average_rent" json:"average_rent"`
}

// RecentLeaseReport covers one floor plan: the two most recent leases plus
// 30/60/90-day trailing windows ending at the as-of date.
type RecentLeaseReport struct {
	RecentTwo LeaseWindow            `bson:"recent_two" json:"recent_two"`
	Windows   map[string]LeaseWindow `bson:"recent_leases" json:"recent_leases"`
}

// ExpiringLeaseReport covers one floor plan: leases expiring within the
// next 90 days from the as-of date versus already expired.
type ExpiringLeaseReport struct {
	ExpiringIn90Days LeaseWindow `bson:"expiring_in_90_days" json:"expiring_in_90_days"`
	Expired          LeaseWindow `bson:"expired" json:"expired"`
}

// LeaseTrendEntry is the (month, floorplan) bucket of the 12-month trend.
type LeaseTrendEntry struct {
	NumOfLeases     int     `bson:"NumOfLeases" json:"NumOfLeases"`
	AvgLeasePerSqFt float64 `bson:"AvgLeasePerSqFt" json:"AvgLeasePerSqFt"`
}

// RentRollDocument is the result of one ingestion run. It is created once
// per run and persisted as a single document keyed by ObjectID.
type RentRollDocument struct {
	ID             primitive.ObjectID                    `bson:"_id,omitempty" json:"objectId,omitempty"`
	UserID         string                                `bson:"user_id" json:"-"`
	FileName       string                                `bson:"fileName" json:"fileName"`
	GeneratedAt    time.Time                             `bson:"generatedAt" json:"generatedAt"`
	Location       Location                              `bson:"location" json:"location"`
	AsOf           string                                `bson:"asOf" json:"asOf"`
	Market         string                                `bson:"market" json:"market"`
	TotalUnits     int                                   `bson:"totalUnits" json:"totalUnits"`
	UnitsConfirmed bool                                  `bson:"unitsConfirmed" json:"unitsConfirmed"`
	TotalBalance   float64                               `bson:"totalBalance" json:"totalBalance"`
	Floorplans     map[string]FloorplanSummary           `bson:"floorplans" json:"floorplans"`
	Vacancy        map[string]VacancyEntry               `bson:"vacancy" json:"vacancy"`
	LossToLease    LossToLease                           `bson:"lossToLease" json:"lossToLease"`
	Charges        map[string]ChargeSummary              `bson:"charges" json:"charges"`
	RecentLeases   map[string]RecentLeaseReport          `bson:"recentLeases" json:"recentLeases"`
	ExpiringLeases map[string]ExpiringLeaseReport        `bson:"expiringLeases" json:"expiringLeases"`
	LeaseTrends    map[string]map[string]LeaseTrendEntry `bson:"leaseTrends" json:"leaseTrends"`
	Data           []UnitRecord                          `bson:"data" json:"data"`
}
