// Package calculation is the tax computation engine: the progressive bracket
// walk, FICA, the state resolver and the orchestrator that sequences them.
// Every function here is pure; the only shared input is the read-only
// reference data in internal/tables.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
	"github.com/visatax/visatax/internal/tables"
)

// ApplyBrackets walks an ascending marginal-rate schedule against income and
// returns the total tax, the per-bracket detail for the occupied brackets,
// and the marginal rate (the rate of the highest occupied bracket).
//
// This is the one bracket algorithm in the system: the federal path applies
// it to taxable income and the state graduated path applies it to AGI.
func ApplyBrackets(income decimal.Decimal, brackets []tables.Bracket) (decimal.Decimal, []domain.BracketDetail, decimal.Decimal) {
	tax := decimal.Zero
	marginalRate := decimal.Zero
	var detail []domain.BracketDetail

	remaining := income
	previousLimit := decimal.Zero

	for _, bracket := range brackets {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		width := bracket.UpperLimit.Sub(previousLimit)
		amount := decimal.Min(remaining, width)
		if amount.GreaterThan(decimal.Zero) {
			bracketTax := amount.Mul(bracket.Rate)
			tax = tax.Add(bracketTax)
			marginalRate = bracket.Rate
			detail = append(detail, domain.BracketDetail{
				Rate:            bracket.Rate,
				From:            previousLimit,
				To:              bracket.UpperLimit,
				AmountInBracket: amount,
				TaxInBracket:    bracketTax,
			})
			remaining = remaining.Sub(amount)
		}
		previousLimit = bracket.UpperLimit
	}

	return tax, detail, marginalRate
}
