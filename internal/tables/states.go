package tables

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
)

// StateCategory classifies a state's income-tax regime.
type StateCategory string

const (
	StateNone      StateCategory = "none"
	StateFlat      StateCategory = "flat"
	StateGraduated StateCategory = "graduated"
)

// StateTaxInfo is the registry entry for one state. MinRate and MaxRate are
// the composite bottom and top marginal rates; for a flat state they are
// equal, for a no-tax state both are zero.
type StateTaxInfo struct {
	Name     string          `yaml:"name" json:"name"`
	MinRate  decimal.Decimal `yaml:"min_rate" json:"min_rate"`
	MaxRate  decimal.Decimal `yaml:"max_rate" json:"max_rate"`
	Category StateCategory   `yaml:"category" json:"category"`
}

func noTaxState(name string) StateTaxInfo {
	return StateTaxInfo{Name: name, MinRate: decimal.Zero, MaxRate: decimal.Zero, Category: StateNone}
}

func flatState(name string, rate float64) StateTaxInfo {
	r := decimal.NewFromFloat(rate)
	return StateTaxInfo{Name: name, MinRate: r, MaxRate: r, Category: StateFlat}
}

func graduatedState(name string, min, max float64) StateTaxInfo {
	return StateTaxInfo{
		Name:     name,
		MinRate:  decimal.NewFromFloat(min),
		MaxRate:  decimal.NewFromFloat(max),
		Category: StateGraduated,
	}
}

var stateRegistry = map[string]StateTaxInfo{
	"alabama":        graduatedState("Alabama", 0.02, 0.05),
	"alaska":         noTaxState("Alaska"),
	"arizona":        flatState("Arizona", 0.025),
	"arkansas":       graduatedState("Arkansas", 0.02, 0.039),
	"california":     graduatedState("California", 0.01, 0.133),
	"colorado":       flatState("Colorado", 0.044),
	"connecticut":    graduatedState("Connecticut", 0.02, 0.0699),
	"delaware":       graduatedState("Delaware", 0.022, 0.066),
	"dc":             graduatedState("District of Columbia", 0.04, 0.1075),
	"florida":        noTaxState("Florida"),
	"georgia":        flatState("Georgia", 0.0539),
	"hawaii":         graduatedState("Hawaii", 0.014, 0.11),
	"idaho":          flatState("Idaho", 0.05695),
	"illinois":       flatState("Illinois", 0.0495),
	"indiana":        flatState("Indiana", 0.0305),
	"iowa":           flatState("Iowa", 0.038),
	"kansas":         graduatedState("Kansas", 0.031, 0.0558),
	"kentucky":       flatState("Kentucky", 0.04),
	"louisiana":      flatState("Louisiana", 0.03),
	"maine":          graduatedState("Maine", 0.058, 0.0715),
	"maryland":       graduatedState("Maryland", 0.02, 0.0575),
	"massachusetts":  flatState("Massachusetts", 0.05),
	"michigan":       flatState("Michigan", 0.0425),
	"minnesota":      graduatedState("Minnesota", 0.0535, 0.0985),
	"mississippi":    flatState("Mississippi", 0.044),
	"missouri":       graduatedState("Missouri", 0.02, 0.047),
	"montana":        graduatedState("Montana", 0.047, 0.059),
	"nebraska":       graduatedState("Nebraska", 0.0246, 0.052),
	"nevada":         noTaxState("Nevada"),
	"new hampshire":  noTaxState("New Hampshire"),
	"new jersey":     graduatedState("New Jersey", 0.014, 0.1075),
	"new mexico":     graduatedState("New Mexico", 0.017, 0.059),
	"new york":       graduatedState("New York", 0.04, 0.109),
	"north carolina": flatState("North Carolina", 0.045),
	"north dakota":   graduatedState("North Dakota", 0.0195, 0.025),
	"ohio":           graduatedState("Ohio", 0.0275, 0.035),
	"oklahoma":       graduatedState("Oklahoma", 0.0025, 0.0475),
	"oregon":         graduatedState("Oregon", 0.0475, 0.099),
	"pennsylvania":   flatState("Pennsylvania", 0.0307),
	"rhode island":   graduatedState("Rhode Island", 0.0375, 0.0599),
	"south carolina": graduatedState("South Carolina", 0.0, 0.062),
	"south dakota":   noTaxState("South Dakota"),
	"tennessee":      noTaxState("Tennessee"),
	"texas":          noTaxState("Texas"),
	"utah":           flatState("Utah", 0.0455),
	"vermont":        graduatedState("Vermont", 0.0335, 0.0875),
	"virginia":       graduatedState("Virginia", 0.02, 0.0575),
	"washington":     noTaxState("Washington"),
	"west virginia":  graduatedState("West Virginia", 0.0222, 0.0482),
	"wisconsin":      graduatedState("Wisconsin", 0.035, 0.0765),
	"wyoming":        noTaxState("Wyoming"),
}

// stateAliases maps USPS codes to registry keys.
var stateAliases = map[string]string{
	"al": "alabama", "ak": "alaska", "az": "arizona", "ar": "arkansas",
	"ca": "california", "co": "colorado", "ct": "connecticut", "de": "delaware",
	"fl": "florida", "ga": "georgia", "hi": "hawaii", "id": "idaho",
	"il": "illinois", "in": "indiana", "ia": "iowa", "ks": "kansas",
	"ky": "kentucky", "la": "louisiana", "me": "maine", "md": "maryland",
	"ma": "massachusetts", "mi": "michigan", "mn": "minnesota", "ms": "mississippi",
	"mo": "missouri", "mt": "montana", "ne": "nebraska", "nv": "nevada",
	"nh": "new hampshire", "nj": "new jersey", "nm": "new mexico", "ny": "new york",
	"nc": "north carolina", "nd": "north dakota", "oh": "ohio", "ok": "oklahoma",
	"or": "oregon", "pa": "pennsylvania", "ri": "rhode island", "sc": "south carolina",
	"sd": "south dakota", "tn": "tennessee", "tx": "texas", "ut": "utah",
	"vt": "vermont", "va": "virginia", "wa": "washington", "wv": "west virginia",
	"wi": "wisconsin", "wy": "wyoming",
	"district of columbia": "dc", "washington dc": "dc",
}

func normalizeStateKey(state string) string {
	key := strings.ToLower(strings.TrimSpace(state))
	if alias, ok := stateAliases[key]; ok {
		return alias
	}
	return key
}

// StateInfo looks up a state by name or USPS code, case-insensitively. An
// unmapped state resolves to a no-tax entry with ok=false so the engine can
// still produce an estimate and note the fallback.
func StateInfo(state string) (StateTaxInfo, bool) {
	info, ok := stateRegistry[normalizeStateKey(state)]
	if !ok {
		return noTaxState(strings.TrimSpace(state)), false
	}
	return info, true
}

// StateBrackets returns the explicit graduated bracket table for a state and
// filing status. Most graduated states have no explicit table; absence is a
// valid answer and selects the interpolation fallback, not an error.
func StateBrackets(state string, status domain.FilingStatus) ([]Bracket, bool) {
	byStatus, ok := stateBracketTables[normalizeStateKey(state)]
	if !ok {
		return nil, false
	}
	rows, ok := byStatus[status]
	return rows, ok
}

var stateBracketTables = map[string]map[domain.FilingStatus][]Bracket{
	"california": {
		domain.FilingSingle: {
			bracketRow(10756, 0.01),
			bracketRow(25499, 0.02),
			bracketRow(40245, 0.04),
			bracketRow(55866, 0.06),
			bracketRow(70606, 0.08),
			bracketRow(360659, 0.093),
			bracketRow(432787, 0.103),
			bracketRow(721314, 0.113),
			bracketRow(1000000, 0.123),
			topRow(0.133), // includes the 1% mental health services surcharge
		},
		domain.FilingMarriedJoint: {
			bracketRow(21512, 0.01),
			bracketRow(50998, 0.02),
			bracketRow(80490, 0.04),
			bracketRow(111732, 0.06),
			bracketRow(141212, 0.08),
			bracketRow(721318, 0.093),
			bracketRow(865574, 0.103),
			bracketRow(1442628, 0.113),
			bracketRow(2000000, 0.123),
			topRow(0.133),
		},
	},
	"new york": {
		domain.FilingSingle: {
			bracketRow(8500, 0.04),
			bracketRow(11700, 0.045),
			bracketRow(13900, 0.0525),
			bracketRow(80650, 0.055),
			bracketRow(215400, 0.06),
			bracketRow(1077550, 0.0685),
			bracketRow(5000000, 0.0965),
			bracketRow(25000000, 0.103),
			topRow(0.109),
		},
		domain.FilingMarriedJoint: {
			bracketRow(17150, 0.04),
			bracketRow(23600, 0.045),
			bracketRow(27900, 0.0525),
			bracketRow(161550, 0.055),
			bracketRow(323200, 0.06),
			bracketRow(2155350, 0.0685),
			bracketRow(5000000, 0.0965),
			bracketRow(25000000, 0.103),
			topRow(0.109),
		},
	},
}
