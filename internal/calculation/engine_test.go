package calculation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visatax/visatax/internal/domain"
)

func TestCalculateIndianStudentTreaty(t *testing.T) {
	// F-1 student from India, year 2, $40k, single, Texas, 2025: FICA exempt,
	// treaty standard deduction, federal tax from the 2025 single brackets,
	// no state tax.
	engine := NewEngine()
	result := engine.Calculate(domain.Profile{
		VisaStatus:   domain.VisaStudent,
		Country:      "India",
		YearsInUS:    2,
		State:        "Texas",
		PayFrequency: domain.PayAnnual,
		GrossPay:     decimal.NewFromInt(40000),
		FilingStatus: domain.FilingSingle,
		TaxYear:      2025,
	})

	assert.True(t, result.FICA.IsExempt)
	assert.True(t, result.FICA.Total.IsZero())
	assert.True(t, result.StandardDeduction.Equal(decimal.NewFromInt(15000)))
	assert.True(t, result.TaxableIncome.Equal(decimal.NewFromInt(25000)))

	// 10% to 11925, 12% on the remaining 13075.
	expectedFederal := decimal.NewFromFloat(1192.50).Add(decimal.NewFromFloat(1569.00))
	assert.True(t, result.FederalTax.Equal(expectedFederal), "expected %s, got %s", expectedFederal, result.FederalTax)
	assert.True(t, result.State.Tax.IsZero())
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.12)))
	assert.True(t, result.TotalTax.Equal(expectedFederal))
	assert.True(t, result.TakeHome.Equal(decimal.NewFromInt(40000).Sub(expectedFederal)))

	assertNoteContaining(t, result.Notes, "Article 21(2)")
}

func TestCalculateMarriedWorkerMonthly(t *testing.T) {
	// H-1B worker, monthly $8000 with $500 pre-tax, married joint, Texas.
	engine := NewEngine()
	result := engine.Calculate(domain.Profile{
		VisaStatus:       domain.VisaWorker,
		Country:          "Germany",
		YearsInUS:        10,
		State:            "Texas",
		PayFrequency:     domain.PayMonthly,
		GrossPay:         decimal.NewFromInt(8000),
		PreTaxDeductions: decimal.NewFromInt(500),
		FilingStatus:     domain.FilingMarriedJoint,
		TaxYear:          2025,
	})

	assert.True(t, result.AnnualGross.Equal(decimal.NewFromInt(96000)))
	assert.True(t, result.AnnualPreTaxDeductions.Equal(decimal.NewFromInt(6000)))
	assert.True(t, result.AGI.Equal(decimal.NewFromInt(90000)))
	assert.True(t, result.StandardDeduction.Equal(decimal.NewFromInt(30000)))
	assert.True(t, result.TaxableIncome.Equal(decimal.NewFromInt(60000)))

	expectedSS := decimal.NewFromFloat(5952.0)
	expectedMedicare := decimal.NewFromFloat(1392.0)
	assert.True(t, result.FICA.SocialSecurity.Equal(expectedSS))
	assert.True(t, result.FICA.Medicare.Equal(expectedMedicare))
	assert.True(t, result.FICA.AdditionalMedicare.IsZero())

	// MFJ 2025: 10% to 23850, 12% on the remaining 36150.
	expectedFederal := decimal.NewFromFloat(2385.0).Add(decimal.NewFromFloat(4338.0))
	assert.True(t, result.FederalTax.Equal(expectedFederal), "expected %s, got %s", expectedFederal, result.FederalTax)
	assert.True(t, result.State.Tax.IsZero())

	expectedTotal := expectedFederal.Add(expectedSS).Add(expectedMedicare)
	assert.True(t, result.TotalTax.Equal(expectedTotal))
	assert.True(t, result.TakeHome.Equal(decimal.NewFromInt(96000).Sub(expectedTotal).Sub(decimal.NewFromInt(6000))))
}

func TestCalculateChineseStudentNoTreaty(t *testing.T) {
	engine := NewEngine()
	result := engine.Calculate(domain.Profile{
		VisaStatus:   domain.VisaStudent,
		Country:      "China",
		YearsInUS:    1,
		State:        "Texas",
		PayFrequency: domain.PayAnnual,
		GrossPay:     decimal.NewFromInt(30000),
		FilingStatus: domain.FilingSingle,
		TaxYear:      2025,
	})

	assert.True(t, result.StandardDeduction.IsZero(), "no treaty, no deduction")
	assert.True(t, result.TaxableIncome.Equal(decimal.NewFromInt(30000)))
	assert.True(t, result.FICA.IsExempt)
	assertNoteContaining(t, result.Notes, "ineligible")
}

func TestCalculateCaliforniaUsesBracketTable(t *testing.T) {
	engine := NewEngine()
	result := engine.Calculate(domain.Profile{
		VisaStatus:   domain.VisaWorker,
		Country:      "Canada",
		YearsInUS:    8,
		State:        "California",
		PayFrequency: domain.PayAnnual,
		GrossPay:     decimal.NewFromInt(500000),
		FilingStatus: domain.FilingSingle,
		TaxYear:      2025,
	})

	assert.Equal(t, domain.StateMethodBrackets, result.State.Method)
	assert.NotEmpty(t, result.State.Brackets)

	// State tax runs on AGI, not on federal taxable income.
	sum := decimal.Zero
	for _, row := range result.State.Brackets {
		sum = sum.Add(row.AmountInBracket)
	}
	assert.True(t, sum.Equal(result.AGI))
}

func TestCalculateInterpolatedStateMatchesFormula(t *testing.T) {
	engine := NewEngine()
	result := engine.Calculate(domain.Profile{
		VisaStatus:   domain.VisaWorker,
		Country:      "Canada",
		YearsInUS:    8,
		State:        "Oregon",
		PayFrequency: domain.PayAnnual,
		GrossPay:     decimal.NewFromInt(100000),
		FilingStatus: domain.FilingSingle,
		TaxYear:      2025,
	})

	assert.Equal(t, domain.StateMethodInterpolated, result.State.Method)
	// 4.75% + (9.9% - 4.75%) * min(100000/200000, 1)
	expectedRate := decimal.NewFromFloat(0.0475).
		Add(decimal.NewFromFloat(0.099).Sub(decimal.NewFromFloat(0.0475)).Mul(decimal.NewFromFloat(0.5)))
	assert.True(t, result.State.EffectiveRate.Equal(expectedRate), "expected %s, got %s", expectedRate, result.State.EffectiveRate)
}

func TestCalculateIdempotent(t *testing.T) {
	profile := domain.Profile{
		VisaStatus:       domain.VisaWorker,
		Country:          "India",
		YearsInUS:        4,
		State:            "New York",
		PayFrequency:     domain.PayMonthly,
		GrossPay:         decimal.NewFromFloat(10433.33),
		PreTaxDeductions: decimal.NewFromFloat(250.50),
		FederalWithheld:  decimal.NewFromInt(1500),
		FilingStatus:     domain.FilingSingle,
		TaxYear:          2025,
	}

	engine := NewEngine()
	first := engine.Calculate(profile)
	second := engine.Calculate(profile)
	assert.Equal(t, first, second)
}

func TestCalculateUnknownYearFallsBack(t *testing.T) {
	engine := NewEngine()
	result := engine.Calculate(domain.Profile{
		VisaStatus:   domain.VisaWorker,
		YearsInUS:    10,
		State:        "Texas",
		PayFrequency: domain.PayAnnual,
		GrossPay:     decimal.NewFromInt(50000),
		FilingStatus: domain.FilingSingle,
		TaxYear:      1999,
	})

	assert.Equal(t, 2025, result.TaxYear)
	assertNoteContaining(t, result.Notes, "1999")
}

func TestCalculateUnknownStateFallsBack(t *testing.T) {
	engine := NewEngine()
	result := engine.Calculate(domain.Profile{
		VisaStatus:   domain.VisaWorker,
		YearsInUS:    10,
		State:        "Atlantis",
		PayFrequency: domain.PayAnnual,
		GrossPay:     decimal.NewFromInt(50000),
		FilingStatus: domain.FilingSingle,
		TaxYear:      2025,
	})

	assert.True(t, result.State.Tax.IsZero())
	assertNoteContaining(t, result.Notes, "Atlantis")
}

func TestCalculateZeroGross(t *testing.T) {
	engine := NewEngine()
	result := engine.Calculate(domain.Profile{
		VisaStatus:   domain.VisaWorker,
		YearsInUS:    10,
		State:        "Texas",
		PayFrequency: domain.PayAnnual,
		FilingStatus: domain.FilingSingle,
		TaxYear:      2025,
	})

	assert.True(t, result.TotalTax.IsZero())
	assert.True(t, result.EffectiveRate.IsZero(), "zero gross must not divide")
	assert.True(t, result.MarginalRate.IsZero())
	assert.Empty(t, result.FederalBrackets)
}

func TestCalculateRefundsStayIndependent(t *testing.T) {
	engine := NewEngine()
	profile := domain.Profile{
		VisaStatus:      domain.VisaWorker,
		YearsInUS:       10,
		State:           "Pennsylvania",
		PayFrequency:    domain.PayAnnual,
		GrossPay:        decimal.NewFromInt(100000),
		FederalWithheld: decimal.NewFromInt(20000),
		StateWithheld:   decimal.NewFromInt(4000),
		FICAWithheld:    decimal.NewFromInt(7000),
		FilingStatus:    domain.FilingSingle,
		TaxYear:         2025,
	}
	result := engine.Calculate(profile)

	// Each refund nets only against its own liability; an overpayment in one
	// category never offsets another.
	assert.True(t, result.FederalRefund.Equal(decimal.NewFromInt(20000).Sub(result.FederalTax)))
	assert.True(t, result.StateRefund.Equal(decimal.NewFromInt(4000).Sub(result.State.Tax)))
	assert.True(t, result.FICARefund.Equal(decimal.NewFromInt(7000).Sub(result.FICA.Total)))
}

func TestCalculateDeductionsExceedingGrossClampAGI(t *testing.T) {
	engine := NewEngine()
	result := engine.Calculate(domain.Profile{
		VisaStatus:       domain.VisaWorker,
		YearsInUS:        10,
		State:            "Texas",
		PayFrequency:     domain.PayAnnual,
		GrossPay:         decimal.NewFromInt(10000),
		PreTaxDeductions: decimal.NewFromInt(25000),
		FilingStatus:     domain.FilingSingle,
		TaxYear:          2025,
	})

	assert.True(t, result.AGI.IsZero())
	assert.True(t, result.TaxableIncome.IsZero())
	assert.True(t, result.FederalTax.IsZero())
}

func assertNoteContaining(t *testing.T, notes []string, substr string) {
	t.Helper()
	for _, note := range notes {
		if strings.Contains(note, substr) {
			return
		}
	}
	require.Failf(t, "missing note", "no note contains %q in %v", substr, notes)
}
