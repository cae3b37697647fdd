package tables

import (
	"strings"

	"github.com/visatax/visatax/internal/domain"
)

// TreatyRule describes a tax-treaty provision that lets a normally ineligible
// nonresident claim the standard deduction.
type TreatyRule struct {
	Country string
	Article string
}

type treatyKey struct {
	visa    domain.VisaStatus
	country string
}

// treatyRegistry is deliberately data, not logic: adding a treaty country is
// a new entry here, never a new branch in the engine.
var treatyRegistry = map[treatyKey]TreatyRule{
	{domain.VisaStudent, "india"}: {
		Country: "India",
		Article: "US-India tax treaty Article 21(2)",
	},
}

// TreatyStandardDeduction reports whether the visa/country pair qualifies for
// the standard deduction under a treaty, and the rule that grants it.
func TreatyStandardDeduction(visa domain.VisaStatus, country string) (TreatyRule, bool) {
	rule, ok := treatyRegistry[treatyKey{visa, strings.ToLower(strings.TrimSpace(country))}]
	return rule, ok
}
