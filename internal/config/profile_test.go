package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visatax/visatax/internal/domain"
)

func writeTempProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempProfile(t, `
visa_status: student
country: India
years_in_us: 2
state: Texas
pay_frequency: annual
gross_pay: 40000
pre_tax_deductions: 0
federal_withheld: 3000
filing_status: single
tax_year: 2025
`)

	parser := NewProfileParser()
	profile, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.VisaStudent, profile.VisaStatus)
	assert.Equal(t, "India", profile.Country)
	assert.Equal(t, 2, profile.YearsInUS)
	assert.Equal(t, "Texas", profile.State)
	assert.Equal(t, domain.PayAnnual, profile.PayFrequency)
	assert.True(t, profile.GrossPay.Equal(decimal.NewFromInt(40000)))
	assert.True(t, profile.FederalWithheld.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, domain.FilingSingle, profile.FilingStatus)
	assert.Equal(t, 2025, profile.TaxYear)
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeTempProfile(t, `
country: China
state: ca
gross_pay: 52000
`)

	parser := NewProfileParser()
	profile, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.PayAnnual, profile.PayFrequency)
	assert.Equal(t, domain.FilingSingle, profile.FilingStatus)
	assert.Equal(t, domain.VisaStudent, profile.VisaStatus)
	assert.Equal(t, 2025, profile.TaxYear)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewProfileParser()
	_, err := parser.LoadFromFile("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileBadYAML(t *testing.T) {
	path := writeTempProfile(t, "gross_pay: [not, a, number")

	parser := NewProfileParser()
	_, err := parser.LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}
