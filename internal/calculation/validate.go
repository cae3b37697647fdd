package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
	"github.com/visatax/visatax/internal/tables"
)

// Severity classifies a validation finding. An error means the result cannot
// be trusted; a warning means the result is computed but flagged.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one advisory validation finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

// ValidateProfile checks a profile for implausible inputs. Validation is
// advisory and layered above the engine: the engine computes regardless of
// the outcome, and these findings only annotate the presentation.
func ValidateProfile(profile domain.Profile) []Issue {
	var issues []Issue

	if profile.GrossPay.LessThan(decimal.Zero) {
		issues = append(issues, Issue{SeverityError, "gross_pay", "gross pay is negative"})
	}
	if profile.PreTaxDeductions.LessThan(decimal.Zero) {
		issues = append(issues, Issue{SeverityError, "pre_tax_deductions", "pre-tax deductions are negative"})
	}
	if profile.PreTaxDeductions.GreaterThan(profile.GrossPay) {
		issues = append(issues, Issue{SeverityError, "pre_tax_deductions", "pre-tax deductions exceed gross pay"})
	}
	if profile.FederalWithheld.LessThan(decimal.Zero) {
		issues = append(issues, Issue{SeverityError, "federal_withheld", "federal withholding is negative"})
	}

	if profile.GrossPay.GreaterThan(decimal.Zero) {
		half := profile.GrossPay.Mul(decimal.NewFromFloat(0.5))
		if profile.FederalWithheld.GreaterThan(half) {
			issues = append(issues, Issue{SeverityWarning, "federal_withheld", "federal withholding exceeds 50% of gross pay"})
		}
	}

	if profile.YearsInUS < 0 {
		issues = append(issues, Issue{SeverityError, "years_in_us", "years in US is negative"})
	} else if profile.YearsInUS > 80 {
		issues = append(issues, Issue{SeverityWarning, "years_in_us", "years in US is implausibly large"})
	}

	switch profile.VisaStatus {
	case domain.VisaStudent, domain.VisaWorker:
	default:
		issues = append(issues, Issue{SeverityError, "visa_status",
			fmt.Sprintf("unknown visa status %q (expected %q or %q)", profile.VisaStatus, domain.VisaStudent, domain.VisaWorker)})
	}

	switch profile.FilingStatus {
	case domain.FilingSingle, domain.FilingMarriedJoint:
	default:
		issues = append(issues, Issue{SeverityError, "filing_status",
			fmt.Sprintf("unknown filing status %q", profile.FilingStatus)})
	}

	switch profile.PayFrequency {
	case domain.PayAnnual, domain.PayMonthly:
	default:
		issues = append(issues, Issue{SeverityError, "pay_frequency",
			fmt.Sprintf("unknown pay frequency %q (expected %q or %q)", profile.PayFrequency, domain.PayAnnual, domain.PayMonthly)})
	}

	if _, ok := tables.StateInfo(profile.State); !ok {
		issues = append(issues, Issue{SeverityWarning, "state",
			fmt.Sprintf("state %q is not on file; it will be treated as having no income tax", profile.State)})
	}
	if _, ok := tables.ForYear(profile.TaxYear); !ok {
		issues = append(issues, Issue{SeverityWarning, "tax_year",
			fmt.Sprintf("tax year %d is not on file; %d tables will be used", profile.TaxYear, tables.DefaultYear)})
	}

	return issues
}

// HasErrors reports whether any finding is error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
