package tables

import (
	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
)

// FICA rates are statutory and have not changed since 1990 (SS/Medicare) and
// 2013 (Additional Medicare), so they live here as named constants rather
// than in the per-year tables.
var (
	SocialSecurityRate     = decimal.NewFromFloat(0.062)
	MedicareRate           = decimal.NewFromFloat(0.0145)
	AdditionalMedicareRate = decimal.NewFromFloat(0.009)
)

// StudentFICAExemptYears is the nonresident F-1 exemption window: calendar
// years 1 through 5 of presence are exempt, year 6 is not.
const StudentFICAExemptYears = 5

var additionalMedicareThresholds = map[domain.FilingStatus]decimal.Decimal{
	domain.FilingSingle:       decimal.NewFromInt(200000),
	domain.FilingMarriedJoint: decimal.NewFromInt(250000),
}

// AdditionalMedicareThreshold returns the wage floor above which the 0.9%
// Additional Medicare tax applies for the given filing status.
func AdditionalMedicareThreshold(status domain.FilingStatus) decimal.Decimal {
	if t, ok := additionalMedicareThresholds[status]; ok {
		return t
	}
	return additionalMedicareThresholds[domain.FilingSingle]
}

var interpolationCeilings = map[domain.FilingStatus]decimal.Decimal{
	domain.FilingSingle:       decimal.NewFromInt(200000),
	domain.FilingMarriedJoint: decimal.NewFromInt(400000),
}

// InterpolationCeiling is the reference income at which a graduated state
// with no explicit bracket table is assumed to reach its top marginal rate.
// The state resolver interpolates between the state's min and max rates
// against this ceiling.
func InterpolationCeiling(status domain.FilingStatus) decimal.Decimal {
	if c, ok := interpolationCeilings[status]; ok {
		return c
	}
	return interpolationCeilings[domain.FilingSingle]
}
