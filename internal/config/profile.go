// Package config loads profiles from YAML files and applies defaults before
// they reach the engine.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/visatax/visatax/internal/domain"
	"github.com/visatax/visatax/internal/tables"
)

// ProfileParser handles parsing of profile files.
type ProfileParser struct{}

// NewProfileParser creates a new profile parser.
func NewProfileParser() *ProfileParser {
	return &ProfileParser{}
}

// LoadFromFile loads a profile from a YAML file. Missing enum fields get
// defaults; structural problems (unreadable file, bad YAML) are errors, while
// implausible values are left to advisory validation.
func (pp *ProfileParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	pp.applyDefaults(&profile)
	return &profile, nil
}

func (pp *ProfileParser) applyDefaults(profile *domain.Profile) {
	if profile.PayFrequency == "" {
		profile.PayFrequency = domain.PayAnnual
	}
	if profile.FilingStatus == "" {
		profile.FilingStatus = domain.FilingSingle
	}
	if profile.VisaStatus == "" {
		profile.VisaStatus = domain.VisaStudent
	}
	if profile.TaxYear == 0 {
		profile.TaxYear = tables.DefaultYear
	}
}
