package domain

import (
	"github.com/shopspring/decimal"
)

// VisaStatus identifies the visa class a profile is filed under.
type VisaStatus string

const (
	VisaStudent VisaStatus = "student" // F-1
	VisaWorker  VisaStatus = "worker"  // H-1B
)

// FilingStatus is the federal filing status.
type FilingStatus string

const (
	FilingSingle       FilingStatus = "single"
	FilingMarriedJoint FilingStatus = "married_joint"
)

// PayFrequency is how the profile's pay amounts are expressed.
// Annual and Monthly are the only recognized values.
type PayFrequency string

const (
	PayAnnual  PayFrequency = "annual"
	PayMonthly PayFrequency = "monthly"
)

// AnnualizationFactor returns the multiplier that converts an amount in this
// frequency to an annual amount.
func (pf PayFrequency) AnnualizationFactor() decimal.Decimal {
	if pf == PayMonthly {
		return decimal.NewFromInt(12)
	}
	return decimal.NewFromInt(1)
}

// Profile is the caller-supplied input to one tax calculation. All monetary
// amounts are expressed in PayFrequency units. The engine never mutates it.
type Profile struct {
	VisaStatus       VisaStatus      `yaml:"visa_status" json:"visa_status"`
	Country          string          `yaml:"country" json:"country"`
	YearsInUS        int             `yaml:"years_in_us" json:"years_in_us"`
	State            string          `yaml:"state" json:"state"`
	PayFrequency     PayFrequency    `yaml:"pay_frequency" json:"pay_frequency"`
	GrossPay         decimal.Decimal `yaml:"gross_pay" json:"gross_pay"`
	PreTaxDeductions decimal.Decimal `yaml:"pre_tax_deductions" json:"pre_tax_deductions"`
	FederalWithheld  decimal.Decimal `yaml:"federal_withheld" json:"federal_withheld"`
	StateWithheld    decimal.Decimal `yaml:"state_withheld" json:"state_withheld"`
	FICAWithheld     decimal.Decimal `yaml:"fica_withheld" json:"fica_withheld"`
	FilingStatus     FilingStatus    `yaml:"filing_status" json:"filing_status"`
	TaxYear          int             `yaml:"tax_year" json:"tax_year"`
}
