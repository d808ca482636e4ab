package rentroll

import (
	"strings"

	"github.com/andrewbantly/leasepeek-server/internal/models"
)

// Canonical status labels.
const (
	StatusOccupied  = "Occupied"
	StatusVacant    = "Vacant"
	StatusModel     = "Model"
	StatusDown      = "Down"
	StatusApplicant = "Applicant"
)

// CanonicalizeStatuses rewrites each unit's status in place to its
// canonical value. This is the single mutation barrier of the pipeline:
// it must complete before any report reads the list.
func CanonicalizeStatuses(units []models.UnitRecord) {
	for i := range units {
		units[i].Status = canonicalStatus(&units[i])
	}
}

// canonicalStatus reduces whatever status/tenant signal is present to one
// of the fixed status categories, passing unknown vendor strings through.
func canonicalStatus(unit *models.UnitRecord) string {
	tenant := strings.ToLower(unit.Tenant)

	// Separator-derived statuses are ambiguous and disambiguate via the
	// tenant text.
	if setHas(combinedVacancyStatuses, unit.Status) {
		if unit.Status == separatorFutureResidents {
			return StatusApplicant
		}
		return statusFromTenant(tenant)
	}

	if unit.Status != "" {
		switch {
		case setHas(occupiedStatusKeywords, unit.Status):
			return StatusOccupied
		case setHas(vacantStatusKeywords, unit.Status):
			return StatusVacant
		case setHas(modelUnitKeywords, unit.Status):
			return StatusModel
		case setHas(downUnitKeywords, unit.Status):
			return StatusDown
		default:
			return unit.Status
		}
	}

	return statusFromTenant(tenant)
}

func statusFromTenant(tenant string) string {
	switch {
	case strings.Contains(tenant, "vacant"):
		return StatusVacant
	case setHas(modelUnitKeywords, tenant):
		return StatusModel
	case setHas(downUnitKeywords, tenant):
		return StatusDown
	default:
		return StatusOccupied
	}
}

// statusIsOccupied reports whether a canonical (or vendor passthrough)
// status counts as revenue-occupied for rent averaging.
func statusIsOccupied(status string) bool {
	return status == StatusOccupied || setHas(occupiedStatusKeywords, status)
}
