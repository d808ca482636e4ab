package dtos

import "github.com/andrewbantly/leasepeek-server/internal/models"

type UploadResponse struct {
	Message  string `json:"message"`
	ObjectID string `json:"objectId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}

// BasicPropertyData is the summary slice of a stored document returned by
// the per-user listing endpoint.
type BasicPropertyData struct {
	ObjectID       string                             `json:"objectId"`
	Location       models.Location                    `json:"location"`
	AsOf           string                             `json:"asOf"`
	TotalUnits     int                                `json:"totalUnits"`
	UnitsConfirmed bool                               `json:"unitsConfirmed"`
	Vacancy        map[string]models.VacancyEntry     `json:"vacancy"`
	Floorplans     map[string]models.FloorplanSummary `json:"floorplans"`
}

type UserDataResponse struct {
	Data    []BasicPropertyData `json:"data"`
	Message string              `json:"message"`
}

// UpdateBasicRequest completes the document fields the spreadsheet cannot
// provide.
type UpdateBasicRequest struct {
	ObjectID       string `json:"objectId" validate:"required"`
	AsOf           string `json:"asOf"`
	Market         string `json:"market"`
	BuildingName   string `json:"buildingName"`
	UnitsConfirmed *bool  `json:"unitsConfirmed"`
	AddressLine1   string `json:"addressLine1"`
	AddressLine2   string `json:"addressLine2"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode"`
}

// FloorPlanDetails carries the manually-entered descriptive fields of one
// floor plan.
type FloorPlanDetails struct {
	PlanCode string  `json:"planCode" validate:"required"`
	PlanName string  `json:"planName"`
	PlanType string  `json:"planType"`
	Beds     int     `json:"beds"`
	Baths    float64 `json:"baths"`
}

type UpdateFloorPlansRequest struct {
	ObjectID   string             `json:"objectId" validate:"required"`
	FloorPlans []FloorPlanDetails `json:"floorPlans" validate:"required,dive"`
}

type UpdateRenovationsRequest struct {
	ObjectID            string   `json:"objectId" validate:"required"`
	RenovatedFloorPlans []string `json:"renovatedFloorPlans"`
}

type UpdateChargeTypesRequest struct {
	ObjectID string                          `json:"objectId" validate:"required"`
	Charges  map[string]models.ChargeSummary `json:"charges" validate:"required"`
}

type UpdateStatusesRequest struct {
	ObjectID     string                         `json:"objectId" validate:"required"`
	UnitStatuses map[string]models.VacancyEntry `json:"unitStatuses" validate:"required"`
}
