package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overlay is an editable YAML document that adds to or replaces the built-in
// reference data. It exists so tables can be corrected for a new tax year
// without a code change.
type Overlay struct {
	Years  []TaxYearTable          `yaml:"years"`
	States map[string]StateTaxInfo `yaml:"states"`
}

// LoadOverlay reads an overlay file and merges it into the store. It must be
// called during startup, before any calculation; the store is read-only
// afterwards.
func LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tables overlay %s: %w", path, err)
	}

	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse tables overlay %s: %w", path, err)
	}

	return applyOverlay(&overlay)
}

func applyOverlay(overlay *Overlay) error {
	for i := range overlay.Years {
		year := overlay.Years[i]
		if year.Year == 0 {
			return fmt.Errorf("overlay year entry %d is missing a year", i)
		}
		if len(year.Brackets) == 0 {
			return fmt.Errorf("overlay year %d has no brackets", year.Year)
		}
		for status, rows := range year.Brackets {
			for j := 1; j < len(rows); j++ {
				if !rows[j].UpperLimit.GreaterThan(rows[j-1].UpperLimit) {
					return fmt.Errorf("overlay year %d %s brackets are not strictly increasing", year.Year, status)
				}
			}
		}
		taxYears[year.Year] = &overlay.Years[i]
	}

	for key, info := range overlay.States {
		switch info.Category {
		case StateNone:
			if !info.MinRate.IsZero() || !info.MaxRate.IsZero() {
				return fmt.Errorf("overlay state %s: no-tax states must have zero rates", key)
			}
		case StateFlat:
			if !info.MinRate.Equal(info.MaxRate) {
				return fmt.Errorf("overlay state %s: flat states must have min_rate equal to max_rate", key)
			}
		case StateGraduated:
			if info.MaxRate.LessThan(info.MinRate) {
				return fmt.Errorf("overlay state %s: max_rate is below min_rate", key)
			}
		default:
			return fmt.Errorf("overlay state %s: unknown category %q", key, info.Category)
		}
		stateRegistry[normalizeStateKey(key)] = info
	}

	return nil
}
