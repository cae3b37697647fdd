package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
	"github.com/visatax/visatax/internal/tables"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(28)
	valueStyle    = lipgloss.NewStyle().Bold(true)
	positiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	negativeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

// ConsoleFormatter renders a styled terminal report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render(fmt.Sprintf("Take-Home Pay Estimate — Tax Year %d", result.TaxYear)))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("INCOME"))
	writeRow(&buf, "Annual gross pay", FormatCurrency(result.AnnualGross))
	writeRow(&buf, "Pre-tax deductions", FormatCurrency(result.AnnualPreTaxDeductions))
	writeRow(&buf, "Adjusted gross income", FormatCurrency(result.AGI))
	writeRow(&buf, "Standard deduction", FormatCurrency(result.StandardDeduction))
	writeRow(&buf, "Taxable income", FormatCurrency(result.TaxableIncome))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("FEDERAL TAX"))
	for _, b := range result.FederalBrackets {
		fmt.Fprintf(&buf, "  %s on %s  %s\n",
			FormatPercent(b.Rate),
			FormatCurrency(b.AmountInBracket),
			valueStyle.Render(FormatCurrency(b.TaxInBracket)))
	}
	writeRow(&buf, "Federal liability", FormatCurrency(result.FederalTax))
	writeRow(&buf, "Marginal rate", FormatPercent(result.MarginalRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("FICA"))
	if result.FICA.IsExempt {
		fmt.Fprintf(&buf, "  %s\n", positiveStyle.Render("Exempt"))
	} else {
		writeRow(&buf, "Social Security", FormatCurrency(result.FICA.SocialSecurity))
		writeRow(&buf, "Medicare", FormatCurrency(result.FICA.Medicare))
		if result.FICA.AdditionalMedicare.GreaterThan(decimal.Zero) {
			writeRow(&buf, "Additional Medicare", FormatCurrency(result.FICA.AdditionalMedicare))
		}
	}
	writeRow(&buf, "FICA total", FormatCurrency(result.FICA.Total))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("STATE TAX"))
	writeRow(&buf, "State", result.State.State)
	writeRow(&buf, "Method", string(result.State.Method))
	writeRow(&buf, "State liability", FormatCurrency(result.State.Tax))
	writeRow(&buf, "Effective state rate", FormatPercent(result.State.EffectiveRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("TOTALS"))
	writeRow(&buf, "Total tax", FormatCurrency(result.TotalTax))
	writeRow(&buf, "Take-home pay", positiveStyle.Render(FormatCurrency(result.TakeHome)))
	writeRow(&buf, "Effective tax rate", FormatPercent(result.EffectiveRate))
	refundLabel := "Federal refund"
	refundStyleToUse := positiveStyle
	if result.FederalRefund.LessThan(decimal.Zero) {
		refundLabel = "Federal owed"
		refundStyleToUse = negativeStyle
	}
	writeRow(&buf, refundLabel, refundStyleToUse.Render(FormatCurrency(result.FederalRefund.Abs())))
	fmt.Fprintln(&buf)

	if len(result.Notes) > 0 {
		fmt.Fprintln(&buf, sectionStyle.Render("NOTES"))
		for _, note := range result.Notes {
			fmt.Fprintf(&buf, "  • %s\n", noteStyle.Render(note))
		}
		fmt.Fprintln(&buf)
	}
	if len(result.Suggestions) > 0 {
		fmt.Fprintln(&buf, sectionStyle.Render("SUGGESTIONS"))
		for _, s := range result.Suggestions {
			fmt.Fprintf(&buf, "  • %s\n", noteStyle.Render(s))
		}
	}

	return buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %s%s\n", labelStyle.Render(label), value)
}

// ContributionLimitLines renders the year's contribution limits as display
// hints. Presentation only; the engine never reads these for tax math.
func ContributionLimitLines(yearTable *tables.TaxYearTable) []string {
	keys := []string{"401k", "ira", "hsa_self", "hsa_family"}
	labels := map[string]string{
		"401k":       "401(k) employee limit",
		"ira":        "IRA limit",
		"hsa_self":   "HSA limit (self-only)",
		"hsa_family": "HSA limit (family)",
	}
	var lines []string
	for _, k := range keys {
		if v, ok := yearTable.ContributionLimits[k]; ok {
			lines = append(lines, fmt.Sprintf("%s: %s", labels[k], FormatCurrency(v)))
		}
	}
	return lines
}
