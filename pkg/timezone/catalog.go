package timezone

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
)

// Add new zones to catalog.json. Zones that observe DST also need a DSTRule,
// otherwise their shift is never applied.
//
//go:embed catalog.json
var catalogJSON []byte

var catalog = mustParseCatalog(catalogJSON)

func mustParseCatalog(data []byte) []Zone {
	zones, err := parseCatalog(data)
	if err != nil {
		panic(err)
	}
	return zones
}

func parseCatalog(data []byte) ([]Zone, error) {
	var zones []Zone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("parsing timezone catalog: %w", err)
	}
	for i := range zones {
		if zones[i].Name == "" {
			return nil, fmt.Errorf("parsing timezone catalog: entry %d has no name", i)
		}
		if !zones[i].UseDST {
			zones[i].DSTShiftHours = 0
			zones[i].Rule = RuleNone
		}
	}
	return zones, nil
}

// Catalog returns the supported zones in catalog order.
func Catalog() []Zone {
	return slices.Clone(catalog)
}
