package domain

import (
	"github.com/shopspring/decimal"
)

// BracketDetail records the slice of income that fell into one marginal
// bracket. From is exclusive, To inclusive; the top bracket's To carries the
// table's sentinel upper limit.
type BracketDetail struct {
	Rate            decimal.Decimal `json:"rate"`
	From            decimal.Decimal `json:"from"`
	To              decimal.Decimal `json:"to"`
	AmountInBracket decimal.Decimal `json:"amount_in_bracket"`
	TaxInBracket    decimal.Decimal `json:"tax_in_bracket"`
}

// FICABreakdown itemizes payroll taxes for one year.
type FICABreakdown struct {
	SocialSecurity     decimal.Decimal `json:"social_security"`
	Medicare           decimal.Decimal `json:"medicare"`
	AdditionalMedicare decimal.Decimal `json:"additional_medicare"`
	Total              decimal.Decimal `json:"total"`
	IsExempt           bool            `json:"is_exempt"`
	Reason             string          `json:"reason,omitempty"`
}

// StateTaxMethod names which state computation path produced the figure.
type StateTaxMethod string

const (
	StateMethodNone         StateTaxMethod = "none"
	StateMethodFlat         StateTaxMethod = "flat"
	StateMethodBrackets     StateTaxMethod = "brackets"
	StateMethodInterpolated StateTaxMethod = "interpolated"
)

// StateTaxDetail is the state resolver's output.
type StateTaxDetail struct {
	State         string          `json:"state"`
	Method        StateTaxMethod  `json:"method"`
	Tax           decimal.Decimal `json:"tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	Brackets      []BracketDetail `json:"brackets,omitempty"`
}

// TaxResult is the engine's sole return value: one fully itemized estimate
// for a single tax year. All amounts are annual.
type TaxResult struct {
	TaxYear                int             `json:"tax_year"`
	AnnualGross            decimal.Decimal `json:"annual_gross"`
	AnnualPreTaxDeductions decimal.Decimal `json:"annual_pre_tax_deductions"`
	AGI                    decimal.Decimal `json:"agi"`
	StandardDeduction      decimal.Decimal `json:"standard_deduction"`
	TaxableIncome          decimal.Decimal `json:"taxable_income"`

	FederalTax      decimal.Decimal `json:"federal_tax"`
	FederalBrackets []BracketDetail `json:"federal_brackets"`
	FICA            FICABreakdown   `json:"fica"`
	State           StateTaxDetail  `json:"state"`

	TotalTax decimal.Decimal `json:"total_tax"`
	TakeHome decimal.Decimal `json:"take_home"`

	FederalWithheld decimal.Decimal `json:"federal_withheld"`
	FederalRefund   decimal.Decimal `json:"federal_refund"` // positive = refund
	StateRefund     decimal.Decimal `json:"state_refund"`
	FICARefund      decimal.Decimal `json:"fica_refund"`

	EffectiveRate decimal.Decimal `json:"effective_rate"`
	MarginalRate  decimal.Decimal `json:"marginal_rate"`

	Notes       []string `json:"notes"`
	Suggestions []string `json:"suggestions,omitempty"`
}
