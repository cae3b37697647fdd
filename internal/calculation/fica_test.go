package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/visatax/visatax/internal/domain"
)

var testWageBase = decimal.NewFromInt(176100)

func TestCalculateFICAStudentExemptionWindow(t *testing.T) {
	// Years 0 through 5 of presence are exempt; year 6 is not. Hard cutoff.
	for years := 0; years <= 5; years++ {
		fica := CalculateFICA(decimal.NewFromInt(50000), domain.VisaStudent, years, domain.FilingSingle, testWageBase)
		assert.True(t, fica.IsExempt, "year %d should be exempt", years)
		assert.True(t, fica.Total.IsZero(), "year %d total should be zero", years)
		assert.True(t, fica.SocialSecurity.IsZero())
		assert.True(t, fica.Medicare.IsZero())
		assert.True(t, fica.AdditionalMedicare.IsZero())
		assert.Contains(t, fica.Reason, "5 calendar years")
	}

	fica := CalculateFICA(decimal.NewFromInt(50000), domain.VisaStudent, 6, domain.FilingSingle, testWageBase)
	assert.False(t, fica.IsExempt, "year 6 must not be exempt")
	assert.True(t, fica.Total.GreaterThan(decimal.Zero))
	assert.Contains(t, fica.Reason, "exemption window exceeded")
}

func TestCalculateFICAWorker(t *testing.T) {
	tests := []struct {
		name         string
		gross        decimal.Decimal
		status       domain.FilingStatus
		expectedSS   decimal.Decimal
		expectedMed  decimal.Decimal
		expectedAddl decimal.Decimal
	}{
		{
			name:         "below wage base",
			gross:        decimal.NewFromInt(96000),
			status:       domain.FilingMarriedJoint,
			expectedSS:   decimal.NewFromFloat(5952.0),  // 96000 * 6.2%
			expectedMed:  decimal.NewFromFloat(1392.0),  // 96000 * 1.45%
			expectedAddl: decimal.Zero,
		},
		{
			name:         "above wage base caps Social Security only",
			gross:        decimal.NewFromInt(180000),
			status:       domain.FilingMarriedJoint,
			expectedSS:   decimal.NewFromFloat(10918.2), // 176100 * 6.2%
			expectedMed:  decimal.NewFromFloat(2610.0),  // uncapped
			expectedAddl: decimal.Zero,
		},
		{
			name:         "exactly at the additional Medicare threshold",
			gross:        decimal.NewFromInt(200000),
			status:       domain.FilingSingle,
			expectedSS:   decimal.NewFromFloat(10918.2),
			expectedMed:  decimal.NewFromFloat(2900.0),
			expectedAddl: decimal.Zero,
		},
		{
			name:         "excess over the single threshold",
			gross:        decimal.NewFromInt(250000),
			status:       domain.FilingSingle,
			expectedSS:   decimal.NewFromFloat(10918.2),
			expectedMed:  decimal.NewFromFloat(3625.0),
			expectedAddl: decimal.NewFromFloat(450.0), // 50000 * 0.9%
		},
		{
			name:         "joint threshold is higher",
			gross:        decimal.NewFromInt(250000),
			status:       domain.FilingMarriedJoint,
			expectedSS:   decimal.NewFromFloat(10918.2),
			expectedMed:  decimal.NewFromFloat(3625.0),
			expectedAddl: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fica := CalculateFICA(tt.gross, domain.VisaWorker, 10, tt.status, testWageBase)
			assert.False(t, fica.IsExempt)
			assert.Empty(t, fica.Reason, "workers get no reason string")
			assert.True(t, fica.SocialSecurity.Equal(tt.expectedSS), "SS: expected %s, got %s", tt.expectedSS, fica.SocialSecurity)
			assert.True(t, fica.Medicare.Equal(tt.expectedMed), "Medicare: expected %s, got %s", tt.expectedMed, fica.Medicare)
			assert.True(t, fica.AdditionalMedicare.Equal(tt.expectedAddl), "Additional: expected %s, got %s", tt.expectedAddl, fica.AdditionalMedicare)
			expectedTotal := tt.expectedSS.Add(tt.expectedMed).Add(tt.expectedAddl)
			assert.True(t, fica.Total.Equal(expectedTotal))
		})
	}
}

func TestCalculateFICAStudentPastWindowTaxedLikeWorker(t *testing.T) {
	student := CalculateFICA(decimal.NewFromInt(120000), domain.VisaStudent, 7, domain.FilingSingle, testWageBase)
	worker := CalculateFICA(decimal.NewFromInt(120000), domain.VisaWorker, 7, domain.FilingSingle, testWageBase)
	assert.True(t, student.Total.Equal(worker.Total))
	assert.NotEmpty(t, student.Reason)
}

func TestCalculateFICANegativeGrossClampsToZero(t *testing.T) {
	fica := CalculateFICA(decimal.NewFromInt(-5000), domain.VisaWorker, 10, domain.FilingSingle, testWageBase)
	assert.True(t, fica.SocialSecurity.IsZero())
	assert.True(t, fica.Medicare.IsZero())
	assert.True(t, fica.AdditionalMedicare.IsZero())
	assert.True(t, fica.Total.IsZero())
}
