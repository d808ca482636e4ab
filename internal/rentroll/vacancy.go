package rentroll

import (
	"github.com/andrewbantly/leasepeek-server/internal/models"
)

// VacancyReport tallies canonical statuses and tags each with its revenue
// type.
func VacancyReport(units []models.UnitRecord) map[string]models.VacancyEntry {
	report := make(map[string]models.VacancyEntry)
	for _, unit := range units {
		status := unit.Status
		if status == "" {
			continue
		}
		entry := report[status]
		entry.Count++
		entry.Type = statusType(status)
		report[status] = entry
	}
	return report
}

func statusType(status string) string {
	switch {
	case status == StatusOccupied || setHas(occupiedTypeStatuses, status):
		return "occupied"
	case status == StatusVacant || setHas(vacantTypeStatuses, status):
		return "vacant"
	case setHas(nonRevenueTypeStatuses, status):
		return "nonRevenue"
	case setHas(futureResidentTypeStatuses, status):
		return "futureResident"
	default:
		return ""
	}
}
