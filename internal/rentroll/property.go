package rentroll

import (
	"strings"

	"github.com/andrewbantly/leasepeek-server/internal/grid"
	"github.com/andrewbantly/leasepeek-server/internal/models"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

// FindPropertyName scans rows above the title row for building/location
// keywords and returns the first matching row's full text as the building
// name. Address sub-fields stay empty for later manual completion.
func FindPropertyName(g grid.Grid, titleRow int) models.Location {
	for row := 0; row < titleRow && row < g.RowCount(); row++ {
		text := g.RowText(row)
		if text == "" {
			continue
		}
		for _, kw := range propertyKeywords {
			if strings.Contains(text, kw) {
				utils.Logger.Debugf("Property name row found: %q", text)
				return models.Location{Building: text}
			}
		}
	}
	utils.Logger.Debug("No property name row found above the header")
	return models.Location{}
}
