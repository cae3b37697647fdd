package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
	"github.com/visatax/visatax/internal/tables"
)

// Engine is the orchestrator: it sequences annualization, FICA, AGI, the
// standard deduction, federal and state tax, and the totals into one
// TaxResult. It is stateless; a single Engine is safe for concurrent use.
type Engine struct{}

// NewEngine creates a calculation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate runs the full pipeline for one profile. It is total over the
// declared input domain: it never returns an error and never panics on
// numeric input, clamping instead. Unknown tax years and states fall back to
// defaults, with the fallback surfaced through the result's Notes.
func (e *Engine) Calculate(profile domain.Profile) domain.TaxResult {
	var notes []string

	yearTable, exactYear := tables.ForYear(profile.TaxYear)
	if !exactYear {
		notes = append(notes, fmt.Sprintf("tax year %d is not on file; using %d tables", profile.TaxYear, yearTable.Year))
	}

	// Stage 1: annualize. Monthly amounts scale by 12, annual by 1; these two
	// frequencies are exhaustive by contract.
	factor := profile.PayFrequency.AnnualizationFactor()
	annualGross := profile.GrossPay.Mul(factor)
	annualPreTax := profile.PreTaxDeductions.Mul(factor)
	annualFederalWithheld := profile.FederalWithheld.Mul(factor)
	annualStateWithheld := profile.StateWithheld.Mul(factor)
	annualFICAWithheld := profile.FICAWithheld.Mul(factor)

	// Stage 2: FICA on gross pay.
	fica := CalculateFICA(annualGross, profile.VisaStatus, profile.YearsInUS, profile.FilingStatus, yearTable.SSWageBase)
	if fica.Reason != "" {
		notes = append(notes, fica.Reason)
	}

	// Stage 3: AGI.
	agi := decimal.Max(annualGross.Sub(annualPreTax), decimal.Zero)

	// Stage 4: standard deduction eligibility.
	deduction, deductionNote := e.standardDeduction(profile, yearTable)
	notes = append(notes, deductionNote)

	// Stage 5: taxable income.
	taxableIncome := decimal.Max(agi.Sub(deduction), decimal.Zero)

	// Stage 6: federal tax.
	federalTax, federalDetail, marginalRate := ApplyBrackets(taxableIncome, yearTable.Brackets[profile.FilingStatus])

	// Stage 7: state tax on AGI.
	stateInfo, knownState := tables.StateInfo(profile.State)
	if !knownState {
		notes = append(notes, fmt.Sprintf("state %q is not on file; treated as having no income tax", profile.State))
	}
	stateDetail, stateNote := ResolveStateTax(stateInfo, profile.FilingStatus, agi)
	notes = append(notes, stateNote)

	// Stage 8: totals. Refund categories stay independent: federal
	// withholding nets only against federal liability, and likewise for
	// state and FICA.
	totalTax := federalTax.Add(stateDetail.Tax).Add(fica.Total)
	takeHome := annualGross.Sub(totalTax).Sub(annualPreTax)

	effectiveRate := decimal.Zero
	if annualGross.GreaterThan(decimal.Zero) {
		effectiveRate = totalTax.Div(annualGross)
	}

	return domain.TaxResult{
		TaxYear:                yearTable.Year,
		AnnualGross:            annualGross,
		AnnualPreTaxDeductions: annualPreTax,
		AGI:                    agi,
		StandardDeduction:      deduction,
		TaxableIncome:          taxableIncome,
		FederalTax:             federalTax,
		FederalBrackets:        federalDetail,
		FICA:                   fica,
		State:                  stateDetail,
		TotalTax:               totalTax,
		TakeHome:               takeHome,
		FederalWithheld:        annualFederalWithheld,
		FederalRefund:          annualFederalWithheld.Sub(federalTax),
		StateRefund:            annualStateWithheld.Sub(stateDetail.Tax),
		FICARefund:             annualFICAWithheld.Sub(fica.Total),
		EffectiveRate:          effectiveRate,
		MarginalRate:           marginalRate,
		Notes:                  notes,
		Suggestions:            e.suggestions(annualPreTax, yearTable),
	}
}

// standardDeduction applies the eligibility policy: workers always get the
// full deduction, students only through a treaty, everyone else zero. The
// treaty side is a registry lookup so new countries are additive data.
func (e *Engine) standardDeduction(profile domain.Profile, yearTable *tables.TaxYearTable) (decimal.Decimal, string) {
	full := yearTable.StandardDeduction[profile.FilingStatus]

	if profile.VisaStatus == domain.VisaWorker {
		return full, fmt.Sprintf("standard deduction %s applied (resident worker)", full.StringFixed(0))
	}

	if rule, ok := tables.TreatyStandardDeduction(profile.VisaStatus, profile.Country); ok {
		return full, fmt.Sprintf("standard deduction %s applied under the %s", full.StringFixed(0), rule.Article)
	}

	return decimal.Zero, "no standard deduction: nonresident students without a treaty benefit are ineligible"
}

// suggestions compares annualized pre-tax deductions against the year's
// contribution limits. Advisory display data only; never part of the math.
func (e *Engine) suggestions(annualPreTax decimal.Decimal, yearTable *tables.TaxYearTable) []string {
	limit401k, ok := yearTable.ContributionLimits["401k"]
	if !ok {
		return nil
	}
	if annualPreTax.LessThan(limit401k) {
		headroom := limit401k.Sub(annualPreTax)
		return []string{fmt.Sprintf("pre-tax deductions are %s below the %d 401(k) limit of %s",
			headroom.StringFixed(0), yearTable.Year, limit401k.StringFixed(0))}
	}
	return nil
}
