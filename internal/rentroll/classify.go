package rentroll

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/andrewbantly/leasepeek-server/internal/grid"
	"github.com/andrewbantly/leasepeek-server/internal/models"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// ClassifyHeader maps a raw header label to its canonical field via the
// ordered keyword tables, FieldUnclassified when nothing matches.
func ClassifyHeader(label string) Field {
	for _, fc := range fieldClassifiers {
		if setHas(fc.keywords, label) {
			return fc.field
		}
	}
	return FieldUnclassified
}

// NormalizeRecords converts raw field maps into canonical unit records.
// Headers that classify nowhere are preserved verbatim under Unclassified;
// no information is discarded.
func NormalizeRecords(raw []*RawUnitRecord) []models.UnitRecord {
	units := make([]models.UnitRecord, 0, len(raw))
	for _, entry := range raw {
		units = append(units, normalizeRecord(entry))
	}
	return units
}

func normalizeRecord(entry *RawUnitRecord) models.UnitRecord {
	unit := models.UnitRecord{
		Charges:      []models.Charge{},
		Unclassified: map[string]any{},
	}

	for _, f := range entry.Fields() {
		switch ClassifyHeader(f.Label) {
		case FieldUnit:
			unit.Unit = grid.Text(f.Value)
		case FieldAddress:
			unit.Address = grid.Text(f.Value)
		case FieldFloorplan:
			unit.Floorplan = grid.Text(f.Value)
		case FieldStatus:
			unit.Status = grid.Text(f.Value)
		case FieldTenant:
			unit.Tenant = grid.Text(f.Value)
		case FieldResidentID:
			unit.ResidentID = grid.Text(f.Value)
		case FieldMoveIn:
			unit.MoveIn = grid.Text(f.Value)
		case FieldMoveOut:
			unit.MoveOut = grid.Text(f.Value)
		case FieldLeaseStart:
			unit.LeaseStart = grid.Text(f.Value)
		case FieldLeaseExpire:
			unit.LeaseExpire = grid.Text(f.Value)
		case FieldNSF:
			unit.NSF = grid.Text(f.Value)

		case FieldSqft:
			setMoneyField(&unit.Sqft, f, unit.Unclassified)
		case FieldMarket:
			setMoneyField(&unit.Market, f, unit.Unclassified)
		case FieldRent:
			setMoneyField(&unit.Rent, f, unit.Unclassified)
		case FieldResidentDeposit:
			setMoneyField(&unit.ResidentDeposit, f, unit.Unclassified)
		case FieldOtherDeposit:
			setMoneyField(&unit.OtherDeposit, f, unit.Unclassified)
		case FieldTotal:
			setMoneyField(&unit.Total, f, unit.Unclassified)

		case FieldBalance:
			if v, ok := coerceFloat(f.Value); ok {
				unit.Balance = v
			} else {
				keepRaw(f, unit.Unclassified)
			}

		case FieldCharges:
			value, ok := coerceInt(f.Value)
			if !ok {
				keepRaw(f, unit.Unclassified)
				continue
			}
			if setHas(negativeChargeCodes, f.Label) {
				value = -abs(value)
			}
			unit.Charges = append(unit.Charges, models.Charge{Code: f.Label, Value: value})

		case FieldLeaseDates:
			splitLeaseDates(&unit, f)

		default:
			unit.Unclassified[f.Label] = rawValue(f.Value)
		}
	}

	// Vacant and model units typically report zero contractual rent; fold
	// their loss charges in so rent reflects the deduction instead.
	for _, charge := range unit.Charges {
		if setHas(vacancyLossChargeCodes, charge.Code) || setHas(modelLossChargeCodes, charge.Code) {
			unit.Rent += charge.Value
		}
	}

	return unit
}

// splitLeaseDates handles the single-cell "MM/DD/YYYY MM/DD/YYYY" form
// some vendors use for lease start and expiration.
func splitLeaseDates(unit *models.UnitRecord, f RawField) {
	s := grid.Text(f.Value)
	if len(s) != 21 {
		return
	}
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return
	}
	start, err1 := time.Parse("01/02/2006", parts[0])
	end, err2 := time.Parse("01/02/2006", parts[1])
	if err1 != nil || err2 != nil {
		utils.Logger.Warnf("Error splitting lease dates %q for key %q", s, f.Label)
		return
	}
	unit.LeaseStart = start.Format("2006-01-02")
	unit.LeaseExpire = end.Format("2006-01-02")
}

func setMoneyField(dst *int, f RawField, unclassified map[string]any) {
	v, ok := coerceInt(f.Value)
	if !ok {
		keepRaw(f, unclassified)
		return
	}
	*dst = v
}

// keepRaw logs a coercion failure and preserves the raw value so nothing
// is lost.
func keepRaw(f RawField, unclassified map[string]any) {
	utils.Logger.Warnf("Error converting %v to integer for key %q. Using raw value.", f.Value, f.Label)
	unclassified[f.Label] = rawValue(f.Value)
}

// coerceInt cleans a currency-like cell and rounds it to integral currency
// units. Strings may carry '*' markers and thousands separators.
func coerceInt(c grid.Cell) (int, bool) {
	f, ok := coerceFloat(c)
	if !ok {
		return 0, false
	}
	return int(math.Round(f)), true
}

func coerceFloat(c grid.Cell) (float64, bool) {
	switch v := c.(type) {
	case float64:
		return v, true
	case string:
		s := strings.TrimSpace(strings.NewReplacer("*", "", ",", "").Replace(v))
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case nil:
		return 0, true
	default:
		return 0, false
	}
}

// rawValue strips the grid.Cell type down to a JSON/BSON-storable scalar.
func rawValue(c grid.Cell) any {
	switch v := c.(type) {
	case time.Time:
		return v.Format("2006-01-02")
	case nil:
		return ""
	default:
		return v
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
