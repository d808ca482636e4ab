package rentroll

import (
	"errors"
	"sync"
	"time"

	"github.com/andrewbantly/leasepeek-server/internal/grid"
	"github.com/andrewbantly/leasepeek-server/internal/models"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// ErrNoHeaderRow means the grid carries no recognizable header row; the
// file cannot be ingested. This is the only pipeline-fatal condition.
var ErrNoHeaderRow = errors.New("no header row found in sheet")

// Ingest runs the full pipeline over one grid: locate the header, extract
// and normalize unit records, canonicalize statuses, then compute every
// report. The subject ID and file name are propagated, not interpreted
// (the file name also serves as the as-of date fallback).
func Ingest(g grid.Grid, subjectID, fileName string) (*models.RentRollDocument, error) {
	mapping := LocateHeader(g)
	if mapping.Empty() {
		return nil, ErrNoHeaderRow
	}

	location := FindPropertyName(g, mapping.TitleRow)
	asOf := FindAsOfDate(g, mapping.TitleRow, fileName)

	raw, err := ExtractRows(g, mapping)
	if err != nil {
		return nil, err
	}
	utils.Logger.Infof("Extracted %d raw unit records from %q", len(raw), fileName)

	units := NormalizeRecords(raw)

	// The one in-place mutation of the pipeline. Reports must only see
	// canonical statuses, so this is a barrier, not a per-record race.
	CanonicalizeStatuses(units)

	doc := &models.RentRollDocument{
		UserID:      subjectID,
		FileName:    fileName,
		GeneratedAt: time.Now().UTC(),
		Location:    location,
		AsOf:        asOf,
		TotalUnits:  TotalUnits(units),
	}

	// The reports are pure and mutually independent, so they run as
	// parallel tasks joined before the document is assembled.
	var wg sync.WaitGroup
	runReport := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	runReport(func() { doc.Vacancy = VacancyReport(units) })
	runReport(func() { doc.Floorplans = FloorplanSurvey(units) })
	runReport(func() {
		doc.LossToLease = FindLossToLease(units)
		doc.Charges = ChargeCodeRollup(units, doc.LossToLease)
	})
	runReport(func() { doc.RecentLeases = RecentLeases(units, asOf) })
	runReport(func() { doc.ExpiringLeases = ExpiringLeases(units, asOf) })
	runReport(func() { doc.LeaseTrends = LeaseTrends(units, asOf) })
	runReport(func() { doc.TotalBalance = OutstandingBalance(units) })
	wg.Wait()

	doc.Data = redactUnits(units)
	return doc, nil
}

// redactUnits copies the canonical list with personally-identifying
// fields cleared before it leaves the pipeline.
func redactUnits(units []models.UnitRecord) []models.UnitRecord {
	out := make([]models.UnitRecord, len(units))
	copy(out, units)
	for i := range out {
		out[i].Tenant = ""
		out[i].ResidentID = ""
	}
	return out
}
