package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
	"github.com/visatax/visatax/internal/tables"
)

// CalculateFICA computes Social Security, Medicare and Additional Medicare
// tax on annual gross pay, applying the nonresident student exemption first.
//
// F-1 students are FICA-exempt for their first five calendar years of US
// presence (partial years count as whole years); year six and later are
// taxed like everyone else. Inputs are taken as already validated — negative
// amounts fall out of the min/max clamps as zero, never as an error.
func CalculateFICA(grossAnnual decimal.Decimal, visa domain.VisaStatus, yearsInUS int, status domain.FilingStatus, ssWageBase decimal.Decimal) domain.FICABreakdown {
	if visa == domain.VisaStudent && yearsInUS <= tables.StudentFICAExemptYears {
		return domain.FICABreakdown{
			SocialSecurity:     decimal.Zero,
			Medicare:           decimal.Zero,
			AdditionalMedicare: decimal.Zero,
			Total:              decimal.Zero,
			IsExempt:           true,
			Reason: fmt.Sprintf("F-1 students are FICA-exempt for their first %d calendar years in the US (year %d of presence)",
				tables.StudentFICAExemptYears, yearsInUS),
		}
	}

	// Social Security is capped at the wage base; Medicare is not.
	ssWages := decimal.Min(grossAnnual, ssWageBase)
	if ssWages.LessThan(decimal.Zero) {
		ssWages = decimal.Zero
	}
	ssTax := ssWages.Mul(tables.SocialSecurityRate)

	medicareWages := decimal.Max(grossAnnual, decimal.Zero)
	medicareTax := medicareWages.Mul(tables.MedicareRate)

	// Additional Medicare applies only to the excess over the filing-status
	// threshold.
	threshold := tables.AdditionalMedicareThreshold(status)
	excess := decimal.Max(grossAnnual.Sub(threshold), decimal.Zero)
	additionalMedicare := excess.Mul(tables.AdditionalMedicareRate)

	breakdown := domain.FICABreakdown{
		SocialSecurity:     ssTax,
		Medicare:           medicareTax,
		AdditionalMedicare: additionalMedicare,
		Total:              ssTax.Add(medicareTax).Add(additionalMedicare),
		IsExempt:           false,
	}
	if visa == domain.VisaStudent {
		breakdown.Reason = fmt.Sprintf("FICA exemption window exceeded: year %d of presence is past the %d-year F-1 limit",
			yearsInUS, tables.StudentFICAExemptYears)
	}
	return breakdown
}
