// Package tables holds the versioned reference data the engine computes from:
// per-year federal tables, the state registry, graduated state bracket tables,
// FICA constants and the treaty registry. Everything here is populated once and
// read-only afterwards.
package tables

import (
	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
)

// NoLimit is the sentinel upper bound of the top bracket in every schedule.
var NoLimit = decimal.NewFromInt(999999999999)

// Bracket is one marginal-rate row. UpperLimit is inclusive; rows are stored
// in ascending UpperLimit order and the last row's limit is NoLimit.
type Bracket struct {
	UpperLimit decimal.Decimal `yaml:"upper_limit" json:"upper_limit"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// TaxYearTable is the federal reference data for one tax year.
type TaxYearTable struct {
	Year               int                                       `yaml:"year" json:"year"`
	StandardDeduction  map[domain.FilingStatus]decimal.Decimal   `yaml:"standard_deduction" json:"standard_deduction"`
	SSWageBase         decimal.Decimal                           `yaml:"ss_wage_base" json:"ss_wage_base"`
	Brackets           map[domain.FilingStatus][]Bracket         `yaml:"brackets" json:"brackets"`
	ContributionLimits map[string]decimal.Decimal                `yaml:"contribution_limits" json:"contribution_limits"`
}

// DefaultYear is used whenever a profile asks for a year the store does not
// carry. The engine never fails on an unknown year.
const DefaultYear = 2025

var taxYears = map[int]*TaxYearTable{
	2024: taxYear2024(),
	2025: taxYear2025(),
}

// ForYear returns the table for the requested year. When the year is not
// carried it returns the DefaultYear table and ok=false so callers can note
// the fallback; it never returns nil.
func ForYear(year int) (*TaxYearTable, bool) {
	t, ok := taxYears[year]
	if !ok {
		t = taxYears[DefaultYear]
	}
	return t, ok
}

// SupportedYears lists the years with real tables, ascending.
func SupportedYears() []int {
	return []int{2024, 2025}
}

func bracketRow(limit int64, rate float64) Bracket {
	return Bracket{UpperLimit: decimal.NewFromInt(limit), Rate: decimal.NewFromFloat(rate)}
}

func topRow(rate float64) Bracket {
	return Bracket{UpperLimit: NoLimit, Rate: decimal.NewFromFloat(rate)}
}

func taxYear2025() *TaxYearTable {
	return &TaxYearTable{
		Year: 2025,
		StandardDeduction: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:       decimal.NewFromInt(15000),
			domain.FilingMarriedJoint: decimal.NewFromInt(30000),
		},
		SSWageBase: decimal.NewFromInt(176100), // 2025 official
		Brackets: map[domain.FilingStatus][]Bracket{
			domain.FilingSingle: {
				bracketRow(11925, 0.10),
				bracketRow(48475, 0.12),
				bracketRow(103350, 0.22),
				bracketRow(197300, 0.24),
				bracketRow(250525, 0.32),
				bracketRow(626350, 0.35),
				topRow(0.37),
			},
			domain.FilingMarriedJoint: {
				bracketRow(23850, 0.10),
				bracketRow(96950, 0.12),
				bracketRow(206700, 0.22),
				bracketRow(394600, 0.24),
				bracketRow(501050, 0.32),
				bracketRow(751600, 0.35),
				topRow(0.37),
			},
		},
		ContributionLimits: map[string]decimal.Decimal{
			"401k":       decimal.NewFromInt(23500),
			"ira":        decimal.NewFromInt(7000),
			"hsa_self":   decimal.NewFromInt(4300),
			"hsa_family": decimal.NewFromInt(8550),
		},
	}
}

func taxYear2024() *TaxYearTable {
	return &TaxYearTable{
		Year: 2024,
		StandardDeduction: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:       decimal.NewFromInt(14600),
			domain.FilingMarriedJoint: decimal.NewFromInt(29200),
		},
		SSWageBase: decimal.NewFromInt(168600),
		Brackets: map[domain.FilingStatus][]Bracket{
			domain.FilingSingle: {
				bracketRow(11600, 0.10),
				bracketRow(47150, 0.12),
				bracketRow(100525, 0.22),
				bracketRow(191950, 0.24),
				bracketRow(243725, 0.32),
				bracketRow(609350, 0.35),
				topRow(0.37),
			},
			domain.FilingMarriedJoint: {
				bracketRow(23200, 0.10),
				bracketRow(94300, 0.12),
				bracketRow(201050, 0.22),
				bracketRow(383900, 0.24),
				bracketRow(487450, 0.32),
				bracketRow(731200, 0.35),
				topRow(0.37),
			},
		},
		ContributionLimits: map[string]decimal.Decimal{
			"401k":       decimal.NewFromInt(23000),
			"ira":        decimal.NewFromInt(7000),
			"hsa_self":   decimal.NewFromInt(4150),
			"hsa_family": decimal.NewFromInt(8300),
		},
	}
}
