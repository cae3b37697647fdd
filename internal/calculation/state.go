package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
	"github.com/visatax/visatax/internal/tables"
)

// ResolveStateTax computes state income tax on AGI under the state's regime
// and returns the detail plus a human-readable note describing which method
// was used. State tax is deliberately computed on AGI, not federal taxable
// income: the federal standard deduction does not carry over.
func ResolveStateTax(info tables.StateTaxInfo, status domain.FilingStatus, agi decimal.Decimal) (domain.StateTaxDetail, string) {
	switch info.Category {
	case tables.StateNone:
		return domain.StateTaxDetail{
			State:         info.Name,
			Method:        domain.StateMethodNone,
			Tax:           decimal.Zero,
			EffectiveRate: decimal.Zero,
		}, fmt.Sprintf("%s has no state income tax", info.Name)

	case tables.StateFlat:
		rate := info.MinRate
		return domain.StateTaxDetail{
			State:         info.Name,
			Method:        domain.StateMethodFlat,
			Tax:           agi.Mul(rate),
			EffectiveRate: rate,
		}, fmt.Sprintf("%s applies a flat %s%% rate to AGI", info.Name, percent(rate))

	case tables.StateGraduated:
		if rows, ok := tables.StateBrackets(info.Name, status); ok {
			tax, detail, _ := ApplyBrackets(agi, rows)
			effective := decimal.Zero
			if agi.GreaterThan(decimal.Zero) {
				effective = tax.Div(agi)
			}
			return domain.StateTaxDetail{
				State:         info.Name,
				Method:        domain.StateMethodBrackets,
				Tax:           tax,
				EffectiveRate: effective,
				Brackets:      detail,
			}, fmt.Sprintf("%s tax computed from its graduated bracket table", info.Name)
		}

		// No explicit table: interpolate a single effective rate between the
		// state's bottom and top marginal rates. The income factor saturates
		// at a filing-status-dependent ceiling. A documented approximation,
		// kept exact for compatibility.
		ceiling := tables.InterpolationCeiling(status)
		factor := decimal.NewFromInt(1)
		if agi.LessThan(ceiling) {
			factor = decimal.Max(agi, decimal.Zero).Div(ceiling)
		}
		rate := info.MinRate.Add(info.MaxRate.Sub(info.MinRate).Mul(factor))
		return domain.StateTaxDetail{
			State:         info.Name,
			Method:        domain.StateMethodInterpolated,
			Tax:           agi.Mul(rate),
			EffectiveRate: rate,
		}, fmt.Sprintf("%s has no bracket table on file; effective rate %s%% interpolated between %s%% and %s%%",
			info.Name, percent(rate), percent(info.MinRate), percent(info.MaxRate))
	}

	// Unknown category is treated like a no-tax state; the registry is
	// validated on load so this is unreachable with built-in data.
	return domain.StateTaxDetail{
		State:         info.Name,
		Method:        domain.StateMethodNone,
		Tax:           decimal.Zero,
		EffectiveRate: decimal.Zero,
	}, fmt.Sprintf("%s has an unrecognized tax category; treated as no income tax", info.Name)
}

func percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(3).String()
}
